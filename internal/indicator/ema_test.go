package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEMA_Sanity(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	value, ok := EMA(series, 3)
	assert.True(t, ok)
	assert.InDelta(t, 9.0, value, 1e-9)
}

func TestEMA_InsufficientSamples(t *testing.T) {
	_, ok := EMA([]float64{1, 2}, 3)
	assert.False(t, ok)
}

func TestEMA_Deterministic(t *testing.T) {
	series := []float64{10, 11, 12, 13, 14, 15, 16}

	a, okA := EMA(series, 5)
	b, okB := EMA(series, 5)

	assert.True(t, okA)
	assert.True(t, okB)
	assert.Equal(t, a, b)
}
