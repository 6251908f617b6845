package indicator

import "github.com/anvh2/polymarket-btc15/internal/models"

// Build computes the full indicator bundle over a candle window. Ready is
// false whenever any of the required series can't yet be formed (too few
// candles); callers must treat that as NO_TRADE, not an error.
func Build(candles []models.Candle) models.Indicators {
	if len(candles) == 0 {
		return models.Indicators{}
	}

	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}

	ema9, ok9 := EMA(closes, 9)
	ema21, ok21 := EMA(closes, 21)
	ema200, ok200 := EMA(closes, 200)
	rsi, rsiSeries, okRSI := RSI(closes, 14)
	macd, okMACD := MACD(closes, 12, 26, 9)
	vwap, okVWAP := SessionVWAP(candles)
	ha := HeikenAshi(candles)

	ready := ok9 && ok21 && okRSI && okMACD && okVWAP
	if !ok200 {
		// ema200 is informational only (long history rarely available in a
		// 15-minute market); its absence never blocks readiness.
		ema200 = 0
	}

	return models.Indicators{
		EMA9:       ema9,
		EMA21:      ema21,
		EMA200:     ema200,
		RSI:        rsi,
		RSISeries:  rsiSeries,
		MACD:       macd,
		HeikenAshi: ha,
		VWAP:       vwap,
		Ready:      ready,
	}
}
