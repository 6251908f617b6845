// Package config declares the typed configuration tree the orchestrator
// boots from: viper decodes the merged YAML/ENV document into this struct
// via mapstructure tags, the same pattern cmd/root.go already wires up.
package config

import "time"

// Config is the full orchestrator policy, populated by viper from config.yaml
// plus ENV (with "__" as the nesting separator).
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Paper      PaperConfig      `mapstructure:"paper"`
	Polygon    PolygonConfig    `mapstructure:"polygon"`
	Chainlink  ChainlinkConfig  `mapstructure:"chainlink"`
	Polymarket PolymarketConfig `mapstructure:"polymarket"`
	Discord    DiscordConfig    `mapstructure:"discord"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	State      StateConfig      `mapstructure:"state"`
	Cadence    CadenceConfig    `mapstructure:"cadence"`
}

type ServerConfig struct {
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`
}

// PaperConfig seeds the paper trader's starting balance; every other paper
// policy knob (guard/risk/exit thresholds) keeps the code-level defaults in
// paper.DefaultConfig and is not re-exposed through YAML/ENV.
type PaperConfig struct {
	StartBalance float64 `mapstructure:"start_balance"`
}

// PolygonConfig carries the RPC/WS endpoints chainlink.Aggregator dials;
// plural fields exist for operators who want to fail over between
// providers, though the orchestrator only ever dials the first entry today.
type PolygonConfig struct {
	RPCURLs []string `mapstructure:"rpc_urls"`
	WSSURLs []string `mapstructure:"wss_urls"`
}

type ChainlinkConfig struct {
	BTCUSDAggregator string `mapstructure:"btc_usd_aggregator"`
}

type PolymarketConfig struct {
	GammaURL          string  `mapstructure:"gamma_url"`
	ClobURL           string  `mapstructure:"clob_url"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Slug              string  `mapstructure:"slug"`
	SeriesID          string  `mapstructure:"series_id"`
	SeriesSlug        string  `mapstructure:"series_slug"`
	AutoSelectLatest  bool    `mapstructure:"auto_select_latest"`
	LiveWSURL         string  `mapstructure:"live_ws_url"`
}

type DiscordConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

type TelegramConfig struct {
	Token  string `mapstructure:"token"`
	ChatID int64  `mapstructure:"chat_id"`
}

type StateConfig struct {
	File       string `mapstructure:"file"`
	BackupDir  string `mapstructure:"backup_dir"`
	StrikeFile string `mapstructure:"strike_file"`
}

// CadenceConfig carries the dual-tick intervals and the error-fatal budget;
// defaults match the 250ms/2s/5s/10-errors figures the orchestrator runs at.
type CadenceConfig struct {
	FastTick             time.Duration `mapstructure:"fast_tick"`
	SlowTicks            int           `mapstructure:"slow_ticks"` // fast ticks per slow tick
	StrikePoll           time.Duration `mapstructure:"strike_poll"`
	MaxConsecutiveErrors int           `mapstructure:"max_consecutive_errors"`
}

// Default returns the policy baseline; viper.Unmarshal is expected to
// overlay onto a copy of this rather than a zero Config.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8080, MetricsPort: 9090},
		Paper:  PaperConfig{StartBalance: 1000},
		Polymarket: PolymarketConfig{
			GammaURL:          "https://gamma-api.polymarket.com",
			ClobURL:           "https://clob.polymarket.com",
			RequestsPerSecond: 5,
			AutoSelectLatest:  true,
		},
		State: StateConfig{
			File:       "./data/state.json",
			BackupDir:  "./data/backups",
			StrikeFile: "./strike.txt",
		},
		Cadence: CadenceConfig{
			FastTick:             250 * time.Millisecond,
			SlowTicks:            8,
			StrikePoll:           5 * time.Second,
			MaxConsecutiveErrors: 10,
		},
	}
}
