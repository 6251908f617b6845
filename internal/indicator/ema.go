// Package indicator implements the stateless numeric functions the strategy
// evaluator builds on: EMA, RSI, MACD, Heiken-Ashi and session VWAP. Every
// function here is deterministic and free of I/O.
package indicator

// EMA returns the last exponential moving average of series over period n,
// or (0, false) when there are fewer than n samples. The seed is the SMA of
// the first n samples; thereafter EMA_t = alpha*x_t + (1-alpha)*EMA_{t-1}
// with alpha = 2/(n+1).
func EMA(series []float64, n int) (float64, bool) {
	v, ok := emaSeries(series, n)
	if !ok {
		return 0, false
	}
	return v[len(v)-1], true
}

// emaSeries returns the EMA value aligned to each sample from index n-1
// onward; samples before the seed are omitted, not zero-padded.
func emaSeries(series []float64, n int) ([]float64, bool) {
	if n <= 0 || len(series) < n {
		return nil, false
	}

	alpha := 2.0 / float64(n+1)

	seed := 0.0
	for i := 0; i < n; i++ {
		seed += series[i]
	}
	seed /= float64(n)

	out := make([]float64, 0, len(series)-n+1)
	out = append(out, seed)

	prev := seed
	for i := n; i < len(series); i++ {
		prev = alpha*series[i] + (1-alpha)*prev
		out = append(out, prev)
	}

	return out, true
}
