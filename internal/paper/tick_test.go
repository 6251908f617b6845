package paper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvh2/polymarket-btc15/internal/models"
)

func TestTick_ExpirySettlement(t *testing.T) {
	tr := newTestTrader(100)
	tr.state.Positions = []models.Position{{
		ID: "p1", MarketSlug: "m1", Side: models.SideUp,
		EntryPrice: 0.45, Amount: 4.5, Shares: 10, EntryTimeMs: 0,
		Strategy: models.StrategyMomentum, EndDateMs: 1000,
	}}

	events := tr.Tick(models.NoTrade("no_signal"), oddsPtr(0.5, 0.5), market1, models.TrendRising, 0, 100_000, 100_050, 2000)

	assert.Empty(t, tr.state.Positions)
	assert.Len(t, tr.state.TradeHistory, 1)
	assert.Equal(t, models.ResultWin, tr.state.TradeHistory[0].Result)
	assert.InDelta(t, 10*1.0-4.5, tr.state.TradeHistory[0].PNL, 1e-9)
	assert.Equal(t, 0, tr.state.ConsecutiveLosses)
	assert.NotEmpty(t, events)
}

func TestTick_TimeGuardFavoredHoldDoesNotExit(t *testing.T) {
	tr := newTestTrader(100)
	tr.state.Positions = []models.Position{{
		ID: "p1", MarketSlug: "m1", Side: models.SideUp,
		EntryPrice: 0.55, Amount: 5, Shares: 9, EntryTimeMs: 0,
		Strategy: models.StrategyMomentum, EndDateMs: 1_000_000,
	}}

	tr.Tick(models.NoTrade("no_signal"), oddsPtr(0.58, 0.42), market1, models.TrendRising, 1.8, 100_000, 100_020, 60_000)

	assert.Len(t, tr.state.Positions, 1)
}

func TestTick_DailyLossCapBlocksEntry(t *testing.T) {
	tr := newTestTrader(100)
	tr.state.DailyLoss = 30.01

	rec := models.Recommendation{Action: models.ActionEnter, Side: models.SideUp, Strategy: models.StrategyMomentum}
	events := tr.Tick(rec, oddsPtr(0.5, 0.5), market1, models.TrendRising, 5, 100_000, 100_050, 60_000)

	assert.Empty(t, tr.state.Positions)
	var found bool
	for _, e := range events {
		if e.Type == models.ActivityBlocked && e.Payload["reason"] == "Daily Loss Limit (%)" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestTick_FlipFlopClosesOppositeThenOpens(t *testing.T) {
	tr := newTestTrader(100)
	tr.state.Positions = []models.Position{{
		ID: "p1", MarketSlug: "m1", Side: models.SideDown,
		EntryPrice: 0.4, Amount: 4, Shares: 10, EntryTimeMs: 0,
		Strategy: models.StrategyMomentum, EndDateMs: 1_000_000,
	}}

	p := 0.6
	d := 0.4
	rec := models.Recommendation{Action: models.ActionEnter, Side: models.SideUp, Strategy: models.StrategyMomentum, Probability: &p}
	tr.Tick(rec, models.Odds{Up: &p, Down: &d}, market1, models.TrendRising, 5, 100_000, 100_050, 60_000)

	assert.Len(t, tr.state.Positions, 1)
	assert.Equal(t, models.SideUp, tr.state.Positions[0].Side)
}

// The duplicate-market gate rejects a same-side entry before capacity is
// checked.
func TestTick_DuplicateMarketBlocksSecondSameSideEntry(t *testing.T) {
	tr := newTestTrader(100)
	tr.cfg.Guard.MaxConcurrentPerSlug = 1
	tr.state.Positions = []models.Position{{
		ID: "p1", MarketSlug: "m1", Side: models.SideUp,
		EntryPrice: 0.5, Amount: 4, Shares: 8, EntryTimeMs: 0,
		Strategy: models.StrategyMomentum, EndDateMs: 1_000_000,
	}}

	rec := models.Recommendation{Action: models.ActionEnter, Side: models.SideUp, Strategy: models.StrategyMomentum}
	tr.Tick(rec, oddsPtr(0.5, 0.5), market1, models.TrendRising, 5, 100_000, 100_050, 60_000)

	assert.Len(t, tr.state.Positions, 1)
}
