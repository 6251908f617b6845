package paper

import (
	"go.uber.org/zap"

	"github.com/anvh2/polymarket-btc15/internal/guard"
	"github.com/anvh2/polymarket-btc15/internal/models"
	"github.com/anvh2/polymarket-btc15/internal/risk"
)

func toRiskStrategy(s models.Strategy) risk.Strategy {
	switch s {
	case models.StrategyLateWindow:
		return risk.StrategyLateWindow
	case models.StrategyMomentum:
		return risk.StrategyMomentum
	case models.StrategyMeanReversionLegacy:
		return risk.StrategyMeanReversion
	default:
		return risk.Strategy(s)
	}
}

// tryEnter runs the full entry gate chain (§4.7.4): price band, circuit
// breaker, duplicate-market, daily-loss cap, cooldowns, flip-flop, capacity
// and balance, in order. The first failing gate blocks and is reported as
// an activity event; otherwise the position is opened.
func (t *Trader) tryEnter(rec models.Recommendation, odds models.Odds, market models.Market, nowMs int64) []models.ActivityEvent {
	if rec.Action != models.ActionEnter {
		return nil
	}

	entryPrice, ok := odds.Side(rec.Side)
	if !ok {
		return []models.ActivityEvent{t.blocked("odds_unavailable", nowMs)}
	}

	if reason, blocked := guard.Chain(guard.EntryGates(t.cfg.Guard, t.state, rec, market.Slug, entryPrice, nowMs)); blocked {
		return []models.ActivityEvent{t.blocked(reason, nowMs)}
	}

	var events []models.ActivityEvent

	// Flip-flop: liquidate any opposite-side positions on this slug first.
	for _, p := range t.state.PositionsForSlug(market.Slug) {
		if p.Side == rec.Side {
			continue
		}
		oppositePrice, ok := odds.Side(p.Side)
		if !ok {
			continue
		}
		events = append(events, t.closePosition(p, oppositePrice, nowMs, "FLIP_CLOSE", true))
	}

	if blocked, reason := guard.Capacity(t.cfg.Guard, t.state, market.Slug); blocked {
		return append(events, t.blocked(reason, nowMs))
	}

	stake := risk.Stake(t.cfg.Risk, toRiskStrategy(rec.Strategy), t.state.Balance, entryPrice, rec.Probability)
	fee := risk.Fee(t.cfg.Risk, stake, entryPrice)

	if blocked, reason := guard.Balance(t.state.Balance, stake+fee); blocked {
		return append(events, t.blocked(reason, nowMs))
	}

	pos := models.Position{
		ID:          t.nextID(market.Slug, nowMs),
		MarketSlug:  market.Slug,
		Side:        rec.Side,
		EntryPrice:  entryPrice,
		Amount:      stake + fee,
		Shares:      stake / entryPrice,
		EntryTimeMs: nowMs,
		Strategy:    rec.Strategy,
		EndDateMs:   market.EndDateMs,
	}

	t.state.Balance -= stake + fee
	t.state.Positions = append(t.state.Positions, pos)
	t.state.LastEntryTime = nowMs

	t.state.TradeHistory = append(t.state.TradeHistory, models.TradeRecord{
		ID:         pos.ID,
		MarketSlug: pos.MarketSlug,
		Side:       pos.Side,
		Strategy:   pos.Strategy,
		EntryPrice: pos.EntryPrice,
		Shares:     pos.Shares,
		OpenedAtMs: nowMs,
		Reason:     "OPEN",
	})

	t.log.Info("position opened",
		zap.String("slug", pos.MarketSlug), zap.String("side", string(pos.Side)),
		zap.Float64("stake", stake), zap.Float64("entryPrice", entryPrice))

	return append(events, models.ActivityEvent{
		Type:        models.ActivityTrade,
		Message:     "opened " + string(pos.Side) + " " + string(pos.Strategy),
		TimestampMs: nowMs,
		Payload: map[string]any{
			"marketSlug": pos.MarketSlug,
			"side":       pos.Side,
			"stake":      stake,
			"fee":        fee,
		},
	})
}

func (t *Trader) blocked(reason string, nowMs int64) models.ActivityEvent {
	t.log.Debug("entry blocked", zap.String("reason", reason))
	return models.ActivityEvent{
		Type:        models.ActivityBlocked,
		Message:     "entry blocked: " + reason,
		TimestampMs: nowMs,
		Payload:     map[string]any{"reason": reason},
	}
}
