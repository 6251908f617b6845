package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvh2/polymarket-btc15/internal/models"
)

func TestSessionVWAP_RollingWindowExcludesStaleHistory(t *testing.T) {
	candles := make([]models.Candle, 90)
	for i := range candles {
		price := 100.0
		if i >= 60 {
			// Sharp regime change at minute 60: the rolling 60-minute
			// window must forget the first 30 candles entirely.
			price = 200.0
		}
		candles[i] = models.Candle{Open: price, High: price, Low: price, Close: price, Volume: 1}
	}

	vwap, ok := SessionVWAP(candles)
	assert.True(t, ok)
	// At index 89 the trailing 60-candle window is [30, 89]: 30 candles at
	// 100 and 30 candles at 200. A canonical full-session VWAP (all 90
	// candles) would instead mix in 60 candles at 100.
	want := (30*100.0 + 30*200.0) / 60.0
	assert.InDelta(t, want, vwap.Value, 1e-9)
}

func TestSlopeLast(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5}

	slope, ok := SlopeLast(series, 2)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, slope, 1e-9)

	_, ok = SlopeLast(series, 10)
	assert.False(t, ok)
}
