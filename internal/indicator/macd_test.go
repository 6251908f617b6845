package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMACD_InsufficientSamples(t *testing.T) {
	_, ok := MACD([]float64{1, 2, 3}, 12, 26, 9)
	assert.False(t, ok)
}

func TestMACD_GrowingHistogramOnUptrend(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 * math.Pow(1.05, float64(i))
	}

	m, ok := MACD(closes, 12, 26, 9)
	assert.True(t, ok)
	assert.InDelta(t, m.Hist-m.HistPrev, m.HistDelta, 1e-9)
	assert.True(t, m.Hist > m.HistPrev, "an accelerating uptrend should keep widening the histogram")
}
