package candle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvh2/polymarket-btc15/internal/models"
)

func TestClockWindow_NoMarket(t *testing.T) {
	now := int64(20 * 60_000) // 5 minutes into the second 15-min window
	w := ClockWindow(now, nil)

	assert.Equal(t, int64(15*60_000), w.StartMs)
	assert.Equal(t, int64(30*60_000), w.EndMs)
	assert.Equal(t, int64(5*60_000), w.ElapsedMs)
}

func TestClockWindow_MarketEndDateOverrides(t *testing.T) {
	now := int64(20 * 60_000)
	market := &models.Market{EndDateMs: int64(22 * 60_000)}

	w := ClockWindow(now, market)
	assert.Equal(t, market.EndDateMs, w.EndMs)
	assert.Equal(t, int64(2*60_000), w.RemainingMs)
}
