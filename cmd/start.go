package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anvh2/polymarket-btc15/internal/config"
	"github.com/anvh2/polymarket-btc15/internal/dashboard"
	"github.com/anvh2/polymarket-btc15/internal/externals/chainlink"
	"github.com/anvh2/polymarket-btc15/internal/externals/discord"
	"github.com/anvh2/polymarket-btc15/internal/externals/polymarket"
	"github.com/anvh2/polymarket-btc15/internal/externals/spotfeed"
	"github.com/anvh2/polymarket-btc15/internal/externals/telegram"
	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
	"github.com/anvh2/polymarket-btc15/internal/libs/queue"
	"github.com/anvh2/polymarket-btc15/internal/libs/storage/simpledb"
	"github.com/anvh2/polymarket-btc15/internal/notifier"
	"github.com/anvh2/polymarket-btc15/internal/orchestrator"
	"github.com/anvh2/polymarket-btc15/internal/paper"
	"github.com/anvh2/polymarket-btc15/internal/server"
	"github.com/anvh2/polymarket-btc15/internal/sink"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the polymarket-btc15 paper trading orchestrator",
	Long:  "Start the polymarket-btc15 paper trading orchestrator",
	RunE:  runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("failed to decode config: %v", err)
	}

	zlog, err := logger.New(viper.GetString("log_path"))
	if err != nil {
		zlog = logger.NewDev()
	}

	store, err := simpledb.NewStorage(zlog, cfg.State.File, cfg.State.BackupDir)
	if err != nil {
		return err
	}
	trader := paper.New(zlog, store, paper.DefaultConfig(), cfg.Paper.StartBalance)

	spot := spotfeed.New(zlog, "BTCUSDT")

	var chainlinkReader chainlink.Reader
	if cfg.Chainlink.BTCUSDAggregator != "" && len(cfg.Polygon.RPCURLs) > 0 {
		reader, err := chainlink.New(zlog, cfg.Polygon.RPCURLs[0], cfg.Chainlink.BTCUSDAggregator)
		if err != nil {
			zlog.Warn("chainlink aggregator unavailable, strike latch falls back to question/metadata only")
		} else {
			chainlinkReader = reader
		}
	}

	poly := polymarket.New(zlog, cfg.Polymarket.GammaURL, cfg.Polymarket.ClobURL, cfg.Polymarket.RequestsPerSecond)

	hub := dashboard.New(zlog)
	hubStop := make(chan struct{})
	go hub.Run(hubStop)

	q := queue.New()
	var tg telegram.Notify
	if cfg.Telegram.Token != "" {
		bot, err := telegram.NewTelegramBot(zlog, cfg.Telegram.Token)
		if err != nil {
			zlog.Warn("telegram bot unavailable")
		} else {
			tg = bot
		}
	}
	disc := discord.New(zlog, cfg.Discord.WebhookURL)
	dispatch := notifier.New(zlog, q, disc, tg, cfg.Telegram.ChatID, sink.NoopTradeSink{})

	orc := orchestrator.New(cfg, zlog, spot, chainlinkReader, poly, trader, hub, dispatch, sink.NoopSignalSink{})

	httpServer := server.New(zlog, fmt.Sprintf(":%d", cfg.Server.Port), hub)
	go func() {
		if err := httpServer.Start(); err != nil {
			zlog.Error("http server stopped unexpectedly")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go dispatch.Run(ctx, hubStop)

	go func() {
		<-sigCh
		cancel()
	}()

	runErr := orc.Run(ctx)

	close(hubStop)
	_ = httpServer.Stop(context.Background())

	if runErr != nil {
		zlog.Error("orchestrator exited with fatal error")
		os.Exit(1)
	}

	return nil
}
