// Package spotfeed adapts a Binance futures kline WebSocket stream into the
// orchestrator's last-value tick slot.
//
// Grounded on the candle-consumption WS loop of the market watcher this
// project grew out of (internal/services/market/watch.go:
// futures.WsKlineServe, done/stop auto-reconnect, recover-and-log on panic),
// simplified from a multi-symbol/multi-interval fan-out to the single
// BTCUSDT 1-minute stream this spec's single-market shape needs.
package spotfeed

import (
	"context"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/adshao/go-binance/v2/futures"
	"go.uber.org/zap"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
)

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

const reconnectBackoff = 3 * time.Second

// Feed is the typed interface the orchestrator depends on; Binance is the
// only implementation today but exit points never leak futures.* types.
type Feed interface {
	Start(ctx context.Context) error
	Stop()
	Last() (priceUSD float64, tsMs int64, ok bool)
}

// Binance streams BTCUSDT 1m klines and exposes the latest close as a
// last-value slot guarded by a mutex, matching §5's "readers see only the
// freshest value".
type Binance struct {
	log    *logger.Logger
	symbol string

	mu    sync.Mutex
	price float64
	tsMs  int64
	ok    bool

	stopC chan struct{}
}

func New(log *logger.Logger, symbol string) *Binance {
	if symbol == "" {
		symbol = "BTCUSDT"
	}
	return &Binance{log: log, symbol: symbol}
}

func (b *Binance) Last() (float64, int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.price, b.tsMs, b.ok
}

// Start connects and reconnects with a fixed backoff until ctx is canceled.
func (b *Binance) Start(ctx context.Context) error {
	b.stopC = make(chan struct{})
	go b.run(ctx)
	return nil
}

func (b *Binance) Stop() {
	if b.stopC != nil {
		close(b.stopC)
	}
}

func (b *Binance) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.stopC:
			return
		default:
		}

		done, stop, err := futures.WsKlineServe(b.symbol, "1m", b.handleKline, b.handleErr)
		if err != nil {
			b.log.Warn("spotfeed connect failed, retrying", zap.Error(err))
			time.Sleep(reconnectBackoff)
			continue
		}

		select {
		case <-done:
		case <-stop:
		case <-ctx.Done():
			return
		case <-b.stopC:
			return
		}

		time.Sleep(reconnectBackoff)
	}
}

func (b *Binance) handleKline(event *futures.WsKlineEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("spotfeed handler panic, recovered", zap.Any("error", r), zap.String("stacktrace", string(debug.Stack())))
		}
	}()

	close, err := parseFloat(event.Kline.Close)
	if err != nil {
		return
	}

	b.mu.Lock()
	b.price = close
	b.tsMs = event.Kline.EndTime
	b.ok = true
	b.mu.Unlock()
}

func (b *Binance) handleErr(err error) {
	b.log.Warn("spotfeed stream error", zap.Error(err))
}
