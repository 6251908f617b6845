package indicator

import "github.com/anvh2/polymarket-btc15/internal/models"

// MACD computes {macd, signal, hist} plus histPrev/histPrev2/histDelta so
// callers can test monotonic histogram growth without recomputing the
// series themselves. ok is false when closes is too short for the slow EMA
// plus the signal EMA.
func MACD(closes []float64, fast, slow, signal int) (models.MACD, bool) {
	fastSeries, ok := emaSeries(closes, fast)
	if !ok {
		return models.MACD{}, false
	}
	slowSeries, ok := emaSeries(closes, slow)
	if !ok {
		return models.MACD{}, false
	}

	// Align both series to the tail (slow has fewer points since its seed
	// starts later); macdSeries[i] corresponds to closes[slow-1+i].
	offset := len(fastSeries) - len(slowSeries)
	macdSeries := make([]float64, len(slowSeries))
	for i := range macdSeries {
		macdSeries[i] = fastSeries[i+offset] - slowSeries[i]
	}

	signalSeries, ok := emaSeries(macdSeries, signal)
	if !ok || len(signalSeries) < 3 {
		return models.MACD{}, false
	}

	histSeries := make([]float64, len(signalSeries))
	macdOffset := len(macdSeries) - len(signalSeries)
	for i := range histSeries {
		histSeries[i] = macdSeries[i+macdOffset] - signalSeries[i]
	}

	last := len(histSeries) - 1
	out := models.MACD{
		Value:     macdSeries[macdOffset+last],
		Signal:    signalSeries[last],
		Hist:      histSeries[last],
		HistPrev:  histSeries[last-1],
		HistPrev2: histSeries[last-2],
	}
	out.HistDelta = out.Hist - out.HistPrev

	return out, true
}
