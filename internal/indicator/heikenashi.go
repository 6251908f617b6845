package indicator

import "github.com/anvh2/polymarket-btc15/internal/models"

type haCandle struct {
	open, high, low, close float64
}

// heikenAshiSeries folds raw OHLC candles into Heiken-Ashi candles.
func heikenAshiSeries(candles []models.Candle) []haCandle {
	if len(candles) == 0 {
		return nil
	}

	out := make([]haCandle, len(candles))

	first := candles[0]
	out[0] = haCandle{
		open:  (first.Open + first.Close) / 2,
		close: (first.Open + first.High + first.Low + first.Close) / 4,
	}
	out[0].high = max3(first.High, out[0].open, out[0].close)
	out[0].low = min3(first.Low, out[0].open, out[0].close)

	for i := 1; i < len(candles); i++ {
		c := candles[i]
		prev := out[i-1]

		ha := haCandle{
			open:  (prev.open + prev.close) / 2,
			close: (c.Open + c.High + c.Low + c.Close) / 4,
		}
		ha.high = max3(c.High, ha.open, ha.close)
		ha.low = min3(c.Low, ha.open, ha.close)

		out[i] = ha
	}

	return out
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// HeikenAshi returns the run length and color of the last streak of
// same-colored Heiken-Ashi candles. Green iff HA_close >= HA_open.
func HeikenAshi(candles []models.Candle) models.HeikenAshi {
	series := heikenAshiSeries(candles)
	if len(series) == 0 {
		return models.HeikenAshi{}
	}
	return countConsecutive(series)
}

func countConsecutive(series []haCandle) models.HeikenAshi {
	last := series[len(series)-1]
	color := models.HARed
	if last.close >= last.open {
		color = models.HAGreen
	}

	run := 0
	for i := len(series) - 1; i >= 0; i-- {
		c := series[i]
		isGreen := c.close >= c.open
		if (color == models.HAGreen) != isGreen {
			break
		}
		run++
	}

	return models.HeikenAshi{Color: color, Run: run}
}
