package candle

import "github.com/anvh2/polymarket-btc15/internal/models"

const windowMinutes = 15
const windowMs = windowMinutes * 60_000

// Window is the deterministic 15-minute clock window a market trades in.
type Window struct {
	StartMs     int64
	EndMs       int64
	ElapsedMs   int64
	RemainingMs int64
}

// RemainingMin is the remaining time expressed in minutes (can be negative
// past expiry).
func (w Window) RemainingMin() float64 {
	return float64(w.RemainingMs) / 60_000
}

// ClockWindow computes the window containing nowMs. When market carries a
// non-zero EndDateMs, that end date overrides the clock-derived remaining
// time, since it is the true settlement instant.
func ClockWindow(nowMs int64, market *models.Market) Window {
	startMs := (nowMs / windowMs) * windowMs
	endMs := startMs + windowMs

	if market != nil && market.EndDateMs > 0 {
		endMs = market.EndDateMs
		startMs = endMs - windowMs
	}

	return Window{
		StartMs:     startMs,
		EndMs:       endMs,
		ElapsedMs:   nowMs - startMs,
		RemainingMs: endMs - nowMs,
	}
}
