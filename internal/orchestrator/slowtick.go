package orchestrator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/anvh2/polymarket-btc15/internal/candle"
	"github.com/anvh2/polymarket-btc15/internal/indicator"
	"github.com/anvh2/polymarket-btc15/internal/metrics"
	"github.com/anvh2/polymarket-btc15/internal/models"
	"github.com/anvh2/polymarket-btc15/internal/strategy"
)

// slowTick fetches a fresh market snapshot, runs indicators and the
// strategy evaluator, and hands the recommendation to the paper trader.
// Within one slow tick the evaluator sees a consistent Snapshot built from
// a single fetch round, and exits are applied before entries inside
// paper.Trader.Tick.
func (o *Orchestrator) slowTick(ctx context.Context) error {
	market, err := o.resolveMarket(ctx)
	if err != nil {
		return fmt.Errorf("resolve market: %w", err)
	}
	o.market = market

	odds, err := o.fetchOdds(ctx, market)
	if err != nil {
		return fmt.Errorf("fetch odds: %w", err)
	}
	o.lastOdds = odds

	spot, tsMs, ok := o.spot.Last()
	if !ok {
		return fmt.Errorf("no spot price observed yet")
	}

	strikePrice, ok := o.latch.Resolve(market, o.chainlinkAfterStart(ctx, market))
	if !ok {
		return fmt.Errorf("unable to resolve strike for %s", market.Slug)
	}

	candles := o.candles.Window(candleWindow)
	indicators := indicator.Build(candles)
	window := candle.ClockWindow(tsMs, &market)

	trend := models.TrendRising
	if indicators.EMA21 != 0 && spot < indicators.EMA21 {
		trend = models.TrendFalling
	}

	snap := models.Snapshot{
		TakenAtMs:   tsMs,
		Spot:        spot,
		Market:      market,
		Strike:      strikePrice,
		Odds:        odds,
		Candles:     candles,
		Indicators:  indicators,
		TimeLeftMin: window.RemainingMin(),
		Trend:       trend,
	}

	rec := strategy.Evaluate(o.evalCfg, snap)

	events := o.trader.Tick(rec, odds, market, trend, snap.TimeLeftMin, strikePrice, spot, tsMs)
	for _, ev := range events {
		o.hub.PublishActivity(ev)
		o.dispatch.PushActivity(ctx, ev)
	}
	o.recordTradeEvents(ctx, events)

	o.recordSignal(ctx, rec, snap)

	state := o.trader.Snapshot()
	metrics.OpenPositions.Set(float64(len(state.Positions)))

	return nil
}

func (o *Orchestrator) resolveMarket(ctx context.Context) (models.Market, error) {
	slug := o.cfg.Polymarket.Slug
	if o.market.Slug != "" && !o.marketExpired(time.Now().UnixMilli()) {
		slug = o.market.Slug
	}
	return o.poly.Market(ctx, slug)
}

func (o *Orchestrator) marketExpired(nowMs int64) bool {
	return o.market.EndDateMs > 0 && nowMs >= o.market.EndDateMs
}

func (o *Orchestrator) fetchOdds(ctx context.Context, market models.Market) (models.Odds, error) {
	up, upOK, err := o.poly.Price(ctx, market.UpTokenID, "BUY")
	if err != nil {
		return models.Odds{}, err
	}
	down, downOK, err := o.poly.Price(ctx, market.DownTokenID, "BUY")
	if err != nil {
		return models.Odds{}, err
	}

	var odds models.Odds
	if upOK {
		odds.Up = &up
	}
	if downOK {
		odds.Down = &down
	}
	return odds, nil
}

// chainlinkAfterStart builds the strike-latch fallback closure: the first
// on-chain price observed strictly after the market's window started.
func (o *Orchestrator) chainlinkAfterStart(ctx context.Context, market models.Market) func() (float64, bool) {
	return func() (float64, bool) {
		if o.chainlink == nil {
			return 0, false
		}
		price, updatedAtMs, err := o.chainlink.Price(ctx)
		if err != nil {
			o.log.Warn("chainlink price read failed", zap.Error(err))
			return 0, false
		}
		window := candle.ClockWindow(updatedAtMs, &market)
		if updatedAtMs < window.StartMs {
			return 0, false
		}
		return price, true
	}
}

func (o *Orchestrator) recordTradeEvents(ctx context.Context, events []models.ActivityEvent) {
	n := 0
	for _, ev := range events {
		if ev.Type == models.ActivityTrade {
			n++
		}
	}
	if n == 0 {
		return
	}
	state := o.trader.Snapshot()
	if n > len(state.TradeHistory) {
		n = len(state.TradeHistory)
	}
	for _, trade := range state.TradeHistory[len(state.TradeHistory)-n:] {
		o.dispatch.PushTrade(ctx, trade)
	}
}

func (o *Orchestrator) recordSignal(ctx context.Context, rec models.Recommendation, snap models.Snapshot) {
	row := models.SignalRow{
		TimestampMs:    snap.TakenAtMs,
		TimeLeftMin:    snap.TimeLeftMin,
		Strategy:       rec.Strategy,
		Recommendation: rec.Action,
		Strike:         snap.Strike,
		Spot:           snap.Spot,
		Gap:            snap.Spot - snap.Strike,
	}
	if rec.Probability != nil {
		row.Probability = *rec.Probability
	}
	if snap.Odds.Up != nil {
		row.OddsUp = *snap.Odds.Up
	}
	if snap.Odds.Down != nil {
		row.OddsDown = *snap.Odds.Down
	}
	if rec.Edge != nil {
		if rec.Side == models.SideDown {
			row.EdgeDown = *rec.Edge
		} else {
			row.EdgeUp = *rec.Edge
		}
	}

	if err := o.signals.Record(ctx, row); err != nil {
		o.log.Warn("signal sink write failed", zap.Error(err))
	}
}
