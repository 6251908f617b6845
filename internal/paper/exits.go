package paper

import (
	"strings"

	"go.uber.org/zap"

	"github.com/anvh2/polymarket-btc15/internal/helpers"
	"github.com/anvh2/polymarket-btc15/internal/models"
	"github.com/anvh2/polymarket-btc15/internal/risk"
)

// closePosition removes pos from the open book, settles balance/bookkeeping
// and returns the activity event for the fan-out sinks. applyFee is false
// only for expiry settlement (§4.7.2: "no fee on settlement").
func (t *Trader) closePosition(pos models.Position, price float64, nowMsInt int64, reason string, applyFee bool) models.ActivityEvent {
	proceeds := pos.Shares * price
	fee := 0.0
	if applyFee {
		fee = risk.Fee(t.cfg.Risk, pos.Shares*price, price)
		proceeds -= fee
	}
	pnl := proceeds - pos.Amount

	result := models.ResultBreakeven
	switch {
	case pnl > 0:
		result = models.ResultWin
	case pnl < 0:
		result = models.ResultLoss
	}

	out := t.state.Positions[:0:0]
	for _, p := range t.state.Positions {
		if p.ID != pos.ID {
			out = append(out, p)
		}
	}
	t.state.Positions = out

	t.state.Balance += proceeds
	t.state.PushResult(result)
	t.state.DailyLoss += helpers.MaxFloat(0, -pnl) - helpers.MaxFloat(0, pnl)
	if result == models.ResultLoss {
		t.state.ConsecutiveLosses++
	} else {
		t.state.ConsecutiveLosses = 0
	}
	if strings.Contains(reason, "STOP_LOSS") {
		t.state.LastStopLossTime = nowMsInt
	}
	t.state.LastExitTime = nowMsInt

	t.state.TradeHistory = append(t.state.TradeHistory, models.TradeRecord{
		ID:         t.nextID(pos.MarketSlug, nowMsInt),
		MarketSlug: pos.MarketSlug,
		Side:       pos.Side,
		Strategy:   pos.Strategy,
		EntryPrice: pos.EntryPrice,
		ExitPrice:  price,
		Shares:     pos.Shares,
		PNL:        pnl,
		Result:     result,
		OpenedAtMs: pos.EntryTimeMs,
		ClosedAtMs: nowMsInt,
		Reason:     reason,
	})

	t.log.Info("position closed",
		zap.String("slug", pos.MarketSlug), zap.String("side", string(pos.Side)),
		zap.String("reason", reason), zap.Float64("pnl", pnl))

	return models.ActivityEvent{
		Type:        models.ActivityTrade,
		Message:     "closed " + string(pos.Side) + " " + reason,
		TimestampMs: nowMsInt,
		Payload: map[string]any{
			"marketSlug": pos.MarketSlug,
			"side":       pos.Side,
			"reason":     reason,
			"pnl":        pnl,
			"result":     result,
		},
	}
}

// settleExpired resolves every position whose market has ended (or whose
// timeLeftMin has run out) once both strike and spot are known, per §4.7.2.
func (t *Trader) settleExpired(market models.Market, strike, spot float64, timeLeftMin float64, nowMs int64) []models.ActivityEvent {
	var events []models.ActivityEvent
	if strike <= 0 || spot <= 0 {
		return events
	}

	expired := timeLeftMin <= 0
	var toSettle []models.Position
	for _, p := range t.state.Positions {
		if p.MarketSlug != market.Slug {
			continue
		}
		if expired || (p.EndDateMs > 0 && nowMs >= p.EndDateMs) {
			toSettle = append(toSettle, p)
		}
	}

	for _, p := range toSettle {
		win := spot >= strike
		if p.Side == models.SideDown {
			win = spot < strike
		}
		price := 0.0
		if win {
			price = 1.0
		}
		events = append(events, t.closePosition(p, price, nowMs, "SETTLEMENT", false))
	}
	return events
}

// roi returns (price - entryPrice) / entryPrice for a position's side.
func roi(pos models.Position, price float64) float64 {
	if pos.EntryPrice == 0 {
		return 0
	}
	return (price - pos.EntryPrice) / pos.EntryPrice
}

// timeGuardThreshold returns the per-strategy time-guard cutoff in minutes.
func (t *Trader) timeGuardThreshold(strategy models.Strategy) float64 {
	if strategy == models.StrategyLateWindow {
		return t.cfg.LateWindowTimeGuardMinutes
	}
	return t.cfg.TimeGuardMinutes
}

// shouldTimeGuardExit evaluates §4.7.3's time-guard rule: exit unless
// favored, hopeful, or near-loss.
func (t *Trader) shouldTimeGuardExit(pos models.Position, price float64, trend models.Trend, timeLeftMin float64) bool {
	threshold := t.timeGuardThreshold(pos.Strategy)
	if timeLeftMin > threshold {
		return false
	}

	favored := price > 0.50
	hopeful := price > 0.20 && trendMatchesSide(trend, pos.Side)
	nearLoss := price <= 1-t.cfg.ResolutionThreshold

	if favored || hopeful || nearLoss {
		return false
	}
	return true
}

func trendMatchesSide(trend models.Trend, side models.Side) bool {
	if side == models.SideUp {
		return trend == models.TrendRising
	}
	return trend == models.TrendFalling
}

// shouldStopLoss evaluates the hard stop-loss, subject to the entry grace
// period.
func (t *Trader) shouldStopLoss(pos models.Position, price float64, nowMs int64) bool {
	ageSec := float64(nowMs-pos.EntryTimeMs) / 1000
	if ageSec < t.cfg.StopLossGracePeriodSeconds {
		return false
	}
	return roi(pos, price) <= t.cfg.StopLossRoiPct
}

// shouldTakeProfit evaluates the per-strategy take-profit rule.
func (t *Trader) shouldTakeProfit(pos models.Position, price float64, timeLeftMin float64) bool {
	switch pos.Strategy {
	case models.StrategyMomentum:
		return roi(pos, price) >= t.cfg.MomentumTakeProfitRoiPct
	case models.StrategyMeanReversionLegacy:
		return price >= 0.50 || timeLeftMin <= t.cfg.MeanReversionTimeStopMin
	case models.StrategyLateWindow:
		return false
	default:
		return roi(pos, price) >= t.cfg.TakeProfitRoiPct
	}
}

// exitScan walks every open position on market.Slug and closes the ones
// whose time-guard, stop-loss or take-profit rule fires, in that order.
func (t *Trader) exitScan(market models.Market, odds models.Odds, trend models.Trend, timeLeftMin float64, nowMs int64) []models.ActivityEvent {
	var events []models.ActivityEvent

	var open []models.Position
	for _, p := range t.state.Positions {
		if p.MarketSlug == market.Slug {
			open = append(open, p)
		}
	}

	for _, pos := range open {
		price, ok := odds.Side(pos.Side)
		if !ok {
			continue
		}

		var reason string
		switch {
		case t.shouldTimeGuardExit(pos, price, trend, timeLeftMin):
			reason = "TIME_GUARD"
		case t.shouldStopLoss(pos, price, nowMs):
			reason = "STOP_LOSS"
		case t.shouldTakeProfit(pos, price, timeLeftMin):
			reason = "TAKE_PROFIT"
		default:
			continue
		}

		events = append(events, t.closePosition(pos, price, nowMs, reason, true))
	}
	return events
}
