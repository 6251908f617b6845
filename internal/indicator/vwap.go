package indicator

import "github.com/anvh2/polymarket-btc15/internal/models"

// sessionWindow is the rolling window, in 1-minute candles, used for the
// VWAP proxy. The upstream system uses a 60-minute rolling proxy rather than
// a canonical session VWAP (see the project's open-question notes); this is
// that explicit, tested window.
const sessionWindow = 60

// SessionVWAP returns Sum(typical*volume)/Sum(volume) over the trailing
// sessionWindow candles, with typical = (high+low+close)/3. Volume is
// currently a fixed unit per candle (§4.2): the formula still divides by it
// so a richer feed can supply real volume without an interface change.
func SessionVWAP(candles []models.Candle) (models.VWAP, bool) {
	series, ok := vwapSeries(candles)
	if !ok {
		return models.VWAP{}, false
	}
	return models.VWAP{Value: series[len(series)-1], Series: series}, true
}

// vwapSeries returns the running rolling VWAP at every index, each computed
// over at most the trailing sessionWindow candles ending at that index.
func vwapSeries(candles []models.Candle) ([]float64, bool) {
	if len(candles) == 0 {
		return nil, false
	}

	out := make([]float64, len(candles))

	for i := range candles {
		start := i - sessionWindow + 1
		if start < 0 {
			start = 0
		}

		var pvSum, vSum float64
		for j := start; j <= i; j++ {
			c := candles[j]
			typical := (c.High + c.Low + c.Close) / 3
			pvSum += typical * c.Volume
			vSum += c.Volume
		}

		if vSum == 0 {
			out[i] = candles[i].Close
			continue
		}
		out[i] = pvSum / vSum
	}

	return out, true
}

// SlopeLast returns (series[-1] - series[-k]) / k, or (0, false) when the
// series has fewer than k points.
func SlopeLast(series []float64, k int) (float64, bool) {
	if k <= 0 || len(series) < k {
		return 0, false
	}
	last := series[len(series)-1]
	prior := series[len(series)-k]
	return (last - prior) / float64(k), true
}
