// Package orchestrator runs the dual-cadence tick loop that ties every
// adapter and domain package together: a fast ticker for UI/PnL refresh, a
// slow ticker (every Nth fast tick) for candle/indicator/strategy/paper
// work, and a strike.txt poll ticker layered on top.
//
// Grounded on the teacher's ServiceOrchestrator (internal/servers/
// orchestrator/orchestrator.go): a constructor wiring every sub-service
// followed by a Start/Stop pair and a single `for { select { ... } }` body.
// Generalized here to two time.Tickers instead of one, with each select
// case delegating to a small method rather than inlining logic, and a
// recover() wrapping the slow tick the way the teacher's loop never needed
// to because its per-cycle work was already defensive per-call.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/anvh2/polymarket-btc15/internal/candle"
	"github.com/anvh2/polymarket-btc15/internal/config"
	"github.com/anvh2/polymarket-btc15/internal/dashboard"
	"github.com/anvh2/polymarket-btc15/internal/externals/chainlink"
	"github.com/anvh2/polymarket-btc15/internal/externals/polymarket"
	"github.com/anvh2/polymarket-btc15/internal/externals/spotfeed"
	"github.com/anvh2/polymarket-btc15/internal/indicator"
	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
	"github.com/anvh2/polymarket-btc15/internal/metrics"
	"github.com/anvh2/polymarket-btc15/internal/models"
	"github.com/anvh2/polymarket-btc15/internal/notifier"
	"github.com/anvh2/polymarket-btc15/internal/paper"
	"github.com/anvh2/polymarket-btc15/internal/sink"
	"github.com/anvh2/polymarket-btc15/internal/strategy"
	"github.com/anvh2/polymarket-btc15/internal/strike"
)

// candleWindow is how many closed candles the indicator pipeline is handed
// each slow tick; the aggregator's own ring keeps more for headroom.
const candleWindow = 220

// Orchestrator is the single consumer task that owns every piece of mutable
// domain state (candle ring, strike latch, PaperState). Producers (the WS
// feeds) only ever write into their own mutex-guarded last-value slots.
type Orchestrator struct {
	cfg config.Config
	log *logger.Logger

	spot      spotfeed.Feed
	chainlink chainlink.Reader
	poly      polymarket.Client
	latch     *strike.Latch
	candles   *candle.Aggregator
	evalCfg   strategy.Config
	trader    *paper.Trader
	hub       *dashboard.Hub
	dispatch  *notifier.Dispatcher
	signals   sink.SignalSink

	market            models.Market
	lastOdds          models.Odds
	fastCount         int
	consecutiveErrors int
}

func New(
	cfg config.Config,
	log *logger.Logger,
	spot spotfeed.Feed,
	chainlinkReader chainlink.Reader,
	poly polymarket.Client,
	trader *paper.Trader,
	hub *dashboard.Hub,
	dispatch *notifier.Dispatcher,
	signals sink.SignalSink,
) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		log:       log,
		spot:      spot,
		chainlink: chainlinkReader,
		poly:      poly,
		latch:     strike.New(log),
		candles:   candle.New(),
		evalCfg:   strategy.DefaultConfig(),
		trader:    trader,
		hub:       hub,
		dispatch:  dispatch,
		signals:   signals,
	}
}

// Run drives the tick loop until ctx is canceled or the fatal error budget
// is exhausted, in which case it returns a non-nil error (the caller is
// expected to exit(1) per §7's "exit codes: 0 normal, 1 fatal").
func (o *Orchestrator) Run(ctx context.Context) error {
	if err := o.spot.Start(ctx); err != nil {
		return fmt.Errorf("failed to start spot feed: %w", err)
	}
	defer o.spot.Stop()

	fastTicker := time.NewTicker(o.cfg.Cadence.FastTick)
	defer fastTicker.Stop()

	strikeTicker := time.NewTicker(o.cfg.Cadence.StrikePoll)
	defer strikeTicker.Stop()

	o.log.Info("orchestrator started",
		zap.Duration("fast_tick", o.cfg.Cadence.FastTick),
		zap.Int("slow_ticks", o.cfg.Cadence.SlowTicks))

	for {
		select {
		case <-ctx.Done():
			o.log.Info("orchestrator stopped by context")
			return nil
		case <-fastTicker.C:
			o.fastTick()
			o.fastCount++
			if o.fastCount >= o.cfg.Cadence.SlowTicks {
				o.fastCount = 0
				if fatal := o.runSlowTickGuarded(ctx); fatal {
					return fmt.Errorf("reached %d consecutive hard errors", o.cfg.Cadence.MaxConsecutiveErrors)
				}
			}
		case <-strikeTicker.C:
			o.pollStrikeOverride()
		}
	}
}

// fastTick never mutates PaperState; it only ingests the freshest spot tick
// into the candle aggregator and republishes UI state from a read-only
// snapshot, matching §5's "fast tick never mutates PaperState".
func (o *Orchestrator) fastTick() {
	start := time.Now()
	defer func() {
		metrics.TickLatency.WithLabelValues("fast").Observe(time.Since(start).Seconds())
	}()

	price, tsMs, ok := o.spot.Last()
	if !ok {
		return
	}
	o.candles.Ingest(tsMs, price)

	state := o.trader.Snapshot()
	o.hub.PublishState(o.renderDashboard(state, price, tsMs))
}

func (o *Orchestrator) pollStrikeOverride() {
	v, ok := strike.ReadOverrideFile(o.cfg.State.StrikeFile)
	if !ok {
		return
	}
	o.latch.SetOverride(v)
}

// runSlowTickGuarded recovers from any panic in slowTick, counts it as a
// hard error and reports whether the consecutive-error budget is now
// exhausted.
func (o *Orchestrator) runSlowTickGuarded(ctx context.Context) (fatal bool) {
	start := time.Now()
	defer func() {
		metrics.TickLatency.WithLabelValues("slow").Observe(time.Since(start).Seconds())
		metrics.ConsecutiveErrors.Set(float64(o.consecutiveErrors))
	}()

	err := o.safeSlowTick(ctx)
	if err != nil {
		o.consecutiveErrors++
		o.log.Warn("slow tick failed", zap.Error(err), zap.Int("consecutive_errors", o.consecutiveErrors))
		return o.consecutiveErrors >= o.cfg.Cadence.MaxConsecutiveErrors
	}

	o.consecutiveErrors = 0
	return false
}

func (o *Orchestrator) safeSlowTick(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in slow tick: %v", r)
		}
	}()
	return o.slowTick(ctx)
}
