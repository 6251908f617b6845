package candle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregator_CandleAggregationScenario(t *testing.T) {
	agg := New()

	_, closed := agg.Ingest(0, 100)
	assert.False(t, closed)
	_, closed = agg.Ingest(30_000, 110)
	assert.False(t, closed)
	_, closed = agg.Ingest(45_000, 90)
	assert.False(t, closed)

	closedCandle, didClose := agg.Ingest(61_000, 105)
	assert.True(t, didClose)
	assert.Equal(t, int64(0), closedCandle.OpenTime)
	assert.Equal(t, 100.0, closedCandle.Open)
	assert.Equal(t, 110.0, closedCandle.High)
	assert.Equal(t, 90.0, closedCandle.Low)
	assert.Equal(t, 90.0, closedCandle.Close)

	forming, ok := agg.Forming()
	assert.True(t, ok)
	assert.Equal(t, 105.0, forming.Open)
}

func TestAggregator_BucketInvariants(t *testing.T) {
	agg := New()

	for i := int64(0); i < 500; i++ {
		agg.Ingest(i*15_000, float64(100+i))
	}

	closedCandles := agg.Closed()
	for i, c := range closedCandles {
		assert.Equal(t, int64(0), c.OpenTime%60_000)
		assert.True(t, c.Low <= c.Open && c.Low <= c.Close)
		assert.True(t, c.High >= c.Open && c.High >= c.Close)

		if i > 0 {
			assert.Equal(t, closedCandles[i-1].CloseTime(), c.OpenTime)
		}
	}
}

func TestAggregator_RingBoundedAtTwoHundredForty(t *testing.T) {
	agg := New()

	for i := int64(0); i < 500; i++ {
		agg.Ingest(i*60_000, float64(i))
	}

	assert.LessOrEqual(t, len(agg.Closed()), ringSize)
}
