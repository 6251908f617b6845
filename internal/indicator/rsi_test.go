package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSI_InsufficientSamples(t *testing.T) {
	_, _, ok := RSI([]float64{1, 2, 3}, 14)
	assert.False(t, ok)
}

func TestRSI_AllGains(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = float64(i + 1)
	}

	value, series, ok := RSI(closes, 14)
	assert.True(t, ok)
	assert.Equal(t, len(closes), len(series))
	assert.InDelta(t, 100.0, value, 1e-6, "a strictly rising series has no losses, RSI saturates at 100")
}

func TestRSI_Deterministic(t *testing.T) {
	closes := []float64{100, 101, 99, 102, 103, 101, 104, 105, 103, 106, 108, 107, 109, 110, 111}

	a, _, okA := RSI(closes, 14)
	b, _, okB := RSI(closes, 14)

	assert.True(t, okA)
	assert.True(t, okB)
	assert.Equal(t, a, b)
}
