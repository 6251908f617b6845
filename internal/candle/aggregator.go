// Package candle folds a tick stream into 1-minute OHLC candles and keeps a
// bounded ring of recent history, and exposes the 15-minute market clock
// windows expire against.
package candle

import (
	"github.com/anvh2/polymarket-btc15/internal/libs/cache/circular"
	"github.com/anvh2/polymarket-btc15/internal/models"
)

const (
	bucketMs = 60_000
	ringSize = 240 // kept >= 240 closed candles per the bounded-ring requirement
)

// Aggregator folds (timestamp_ms, price) ticks into closed 1-minute candles,
// exposing the currently-forming candle separately. Not safe for concurrent
// use: it is owned exclusively by the orchestrator's single consumer task.
type Aggregator struct {
	ring     *circular.Cache
	forming  *models.Candle
}

// New returns an aggregator with a ring sized to keep at least 240 closed
// candles, generalized from the teacher's circular.Cache container.
func New() *Aggregator {
	return &Aggregator{ring: circular.New(ringSize)}
}

// Ingest folds one tick into the aggregator. It returns the candle that just
// closed, if the tick crossed a minute boundary.
func (a *Aggregator) Ingest(timestampMs int64, price float64) (closed models.Candle, didClose bool) {
	openTime := (timestampMs / bucketMs) * bucketMs

	if a.forming == nil {
		a.forming = &models.Candle{OpenTime: openTime, Open: price, High: price, Low: price, Close: price, Volume: 1}
		return models.Candle{}, false
	}

	if a.forming.OpenTime == openTime {
		if price > a.forming.High {
			a.forming.High = price
		}
		if price < a.forming.Low {
			a.forming.Low = price
		}
		a.forming.Close = price
		return models.Candle{}, false
	}

	prior := *a.forming
	prior.Closed = true
	a.ring.Insert(prior)

	a.forming = &models.Candle{OpenTime: openTime, Open: price, High: price, Low: price, Close: price, Volume: 1}

	return prior, true
}

// Forming returns the currently-open (not yet closed) candle, and whether
// one exists yet.
func (a *Aggregator) Forming() (models.Candle, bool) {
	if a.forming == nil {
		return models.Candle{}, false
	}
	return *a.forming, true
}

// Closed returns the closed candles in chronological order, oldest first.
func (a *Aggregator) Closed() []models.Candle {
	raw := a.ring.Sorted()
	out := make([]models.Candle, len(raw))
	for i, v := range raw {
		out[i] = v.(models.Candle)
	}
	return out
}

// Window returns up to the last n closed candles plus the forming candle
// appended (so the evaluator always sees the freshest price), oldest first.
func (a *Aggregator) Window(n int) []models.Candle {
	closed := a.Closed()
	if len(closed) > n {
		closed = closed[len(closed)-n:]
	}

	if forming, ok := a.Forming(); ok {
		closed = append(closed, forming)
	}

	return closed
}
