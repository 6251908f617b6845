package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvh2/polymarket-btc15/internal/models"
)

func baseState() models.PaperState {
	return models.PaperState{Balance: 100}
}

func checkReason(cfg Config, state models.PaperState, rec models.Recommendation, slug string, price float64, nowMs int64) (string, bool) {
	return Chain(EntryGates(cfg, state, rec, slug, price, nowMs))
}

func TestEntryGates_PriceBandBlocks(t *testing.T) {
	cfg := DefaultConfig()
	reason, blocked := checkReason(cfg, baseState(), models.Recommendation{Side: models.SideUp}, "m1", 0.98, 0)
	assert.True(t, blocked)
	assert.Contains(t, reason, "price_band")
}

func TestEntryGates_CircuitBreakerBlocks(t *testing.T) {
	cfg := DefaultConfig()
	state := baseState()
	state.ConsecutiveLosses = 5

	reason, blocked := checkReason(cfg, state, models.Recommendation{Side: models.SideUp}, "m1", 0.5, 0)
	assert.True(t, blocked)
	assert.Contains(t, reason, "circuit_breaker")
}

func TestEntryGates_DuplicateMarketBlocks(t *testing.T) {
	cfg := DefaultConfig()
	state := baseState()
	state.Positions = []models.Position{{MarketSlug: "m1", Side: models.SideUp}}

	reason, blocked := checkReason(cfg, state, models.Recommendation{Side: models.SideUp}, "m1", 0.5, 0)
	assert.True(t, blocked)
	assert.Contains(t, reason, "duplicate_market")
}

func TestEntryGates_DailyLossCapBlocks(t *testing.T) {
	cfg := DefaultConfig()
	state := baseState()
	state.DailyLoss = 30

	reason, blocked := checkReason(cfg, state, models.Recommendation{Side: models.SideUp}, "m1", 0.5, 0)
	assert.True(t, blocked)
	assert.Equal(t, "Daily Loss Limit (%)", reason)
}

func TestEntryGates_PostStopLossCooldownBlocks(t *testing.T) {
	cfg := DefaultConfig()
	state := baseState()
	state.LastStopLossTime = 1_000_000

	reason, blocked := checkReason(cfg, state, models.Recommendation{Side: models.SideUp}, "m1", 0.5, 1_000_000+60_000)
	assert.True(t, blocked)
	assert.Contains(t, reason, "post_sl_cooldown")
}

func TestEntryGates_EntryDebounceBlocks(t *testing.T) {
	cfg := DefaultConfig()
	state := baseState()
	state.LastEntryTime = 1_000_000

	reason, blocked := checkReason(cfg, state, models.Recommendation{Side: models.SideUp}, "m1", 0.5, 1_000_000+2_000)
	assert.True(t, blocked)
	assert.Contains(t, reason, "entry_debounce")
}

func TestEntryGates_AllPass(t *testing.T) {
	cfg := DefaultConfig()
	reason, blocked := checkReason(cfg, baseState(), models.Recommendation{Side: models.SideUp}, "m1", 0.5, 1_000_000)
	assert.False(t, blocked)
	assert.Equal(t, "", reason)
}

func TestCapacity_BlocksWhenFull(t *testing.T) {
	cfg := DefaultConfig()
	state := baseState()
	state.Positions = []models.Position{{MarketSlug: "m1", Side: models.SideUp}, {MarketSlug: "m1", Side: models.SideUp}}

	blocked, reason := Capacity(cfg, state, "m1")
	assert.True(t, blocked)
	assert.Equal(t, "capacity", reason)
}

func TestBalance_BlocksWhenInsufficient(t *testing.T) {
	blocked, reason := Balance(10, 15)
	assert.True(t, blocked)
	assert.Equal(t, "insufficient_balance", reason)

	blocked, _ = Balance(10, 5)
	assert.False(t, blocked)
}
