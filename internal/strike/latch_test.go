package strike

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
	"github.com/anvh2/polymarket-btc15/internal/models"
)

func TestParseFromQuestion(t *testing.T) {
	v, ok := ParseFromQuestion("Will BTC be above $100,500 at 3pm?")
	assert.True(t, ok)
	assert.Equal(t, 100500.0, v)

	_, ok = ParseFromQuestion("Will ETH flip BTC?")
	assert.False(t, ok)
}

func TestParseFromMetadata(t *testing.T) {
	v, ok := ParseFromMetadata(map[string]string{"strikePrice": "99123.45"})
	assert.True(t, ok)
	assert.InDelta(t, 99123.45, v, 1e-6)

	_, ok = ParseFromMetadata(map[string]string{"unrelated": "99123.45"})
	assert.False(t, ok)
}

func TestLatch_FallsBackToChainlink(t *testing.T) {
	l := New(logger.NewDev())
	market := models.Market{Slug: "btc-15m-0001", Question: "no strike here"}

	v, ok := l.Resolve(market, func() (float64, bool) { return 101000, true })
	assert.True(t, ok)
	assert.Equal(t, 101000.0, v)

	// Second resolve for the same slug must return the latched value, not
	// re-invoke chainlink.
	v2, ok := l.Resolve(market, func() (float64, bool) { return 55, true })
	assert.True(t, ok)
	assert.Equal(t, v, v2)
}

func TestLatch_OverrideWins(t *testing.T) {
	l := New(logger.NewDev())
	l.SetOverride(123456)

	v, ok := l.Resolve(models.Market{Slug: "any", Question: "above $200"}, nil)
	assert.True(t, ok)
	assert.Equal(t, 123456.0, v)
}
