package paper

import "github.com/anvh2/polymarket-btc15/internal/models"

// Tick runs the full per-slow-tick order of operations (§4.7): daily reset,
// expiry settlement, exit scan, entry gating. Exits are applied before
// entries so a same-tick flip first liquidates, then re-opens (§5).
func (t *Trader) Tick(rec models.Recommendation, odds models.Odds, market models.Market, trend models.Trend, timeLeftMin, strike, spot float64, nowMs int64) []models.ActivityEvent {
	t.mu.Lock()
	defer t.mu.Unlock()

	var events []models.ActivityEvent
	changed := false

	if t.dailyReset(nowMs) {
		changed = true
		events = append(events, models.ActivityEvent{
			Type:        models.ActivityDailyReset,
			Message:     "daily loss counter reset",
			TimestampMs: nowMs,
		})
	}

	if ev := t.settleExpired(market, strike, spot, timeLeftMin, nowMs); len(ev) > 0 {
		changed = true
		events = append(events, ev...)
	}

	if ev := t.exitScan(market, odds, trend, timeLeftMin, nowMs); len(ev) > 0 {
		changed = true
		events = append(events, ev...)
	}

	if ev := t.tryEnter(rec, odds, market, nowMs); len(ev) > 0 {
		for _, e := range ev {
			if e.Type != models.ActivityBlocked {
				changed = true
			}
		}
		events = append(events, ev...)
	}

	if changed {
		t.persist()
	}

	return events
}
