package indicator

// rma is Wilder's rolling moving average: R[0..period-1] is the running SMA
// of the values seen so far, R[period] onward is
// R[i] = ((R[i-1]*(period-1)) + v[i]) / period.
//
// Grounded on the teacher's talib.Rma, kept byte-for-byte in shape since it
// is the standard Wilder smoothing formula used by both RSI and KDJ-style
// indicators.
func rma(period int, values []float64) []float64 {
	result := make([]float64, len(values))
	sum := 0.0

	for i, v := range values {
		count := i + 1

		if i < period {
			sum += v
		} else {
			sum = (result[i-1] * float64(period-1)) + v
			count = period
		}

		result[i] = sum / float64(count)
	}

	return result
}

// RSI returns Wilder's RSI of the final sample in closes over period n
// (default 14), plus the full series so callers can compute a slope. ok is
// false when len(closes) <= n.
func RSI(closes []float64, n int) (value float64, series []float64, ok bool) {
	if n <= 0 || len(closes) <= n {
		return 0, nil, false
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))

	for i := 1; i < len(closes); i++ {
		diff := closes[i] - closes[i-1]
		if diff > 0 {
			gains[i] = diff
		} else {
			losses[i] = -diff
		}
	}

	meanGains := rma(n, gains)
	meanLosses := rma(n, losses)

	series = make([]float64, len(closes))
	for i := range series {
		if meanLosses[i] == 0 {
			series[i] = 100
			continue
		}
		rs := meanGains[i] / meanLosses[i]
		series[i] = 100 - (100 / (1 + rs))
	}

	return series[len(series)-1], series, true
}
