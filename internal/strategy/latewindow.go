package strategy

import (
	"fmt"

	"github.com/anvh2/polymarket-btc15/internal/helpers"
	"github.com/anvh2/polymarket-btc15/internal/models"
)

// lateWindow implements §4.6's Late Window rule: a large, well-confirmed
// diff with a tight-volatility filter and a long matching HA run.
func lateWindow(cfg Config, snap models.Snapshot) models.Recommendation {
	diff := snap.Spot - snap.Strike
	if diff >= -cfg.LateWindowDiff && diff <= cfg.LateWindowDiff {
		return models.NoTrade(fmt.Sprintf("late_window_diff_too_small_%.2f", diff))
	}

	side := models.SideUp
	if diff < 0 {
		side = models.SideDown
	}

	candles := snap.Candles
	tail := candles
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}
	ranges := make([]float64, len(tail))
	for i, c := range tail {
		ranges[i] = c.High - c.Low
	}
	if helpers.Mean(ranges) > cfg.LateWindowVol {
		return models.NoTrade("late_window_too_volatile")
	}

	ha := snap.Indicators.HeikenAshi
	wantColor := models.HAGreen
	if side == models.SideDown {
		wantColor = models.HARed
	}
	if !(ha.Color == wantColor && ha.Run >= cfg.LateWindowRun) {
		return models.NoTrade("late_window_ha_run_too_short")
	}

	odds, _ := snap.Odds.Side(side)
	if odds >= cfg.LateWindowOddsCap {
		return models.NoTrade(fmt.Sprintf("odds_too_high_%s_%.2f", sideTag(side), odds))
	}

	return models.Recommendation{
		Action:     models.ActionEnter,
		Side:       side,
		Strategy:   models.StrategyLateWindow,
		Confidence: models.ConfidenceVeryHigh,
		Reason:     fmt.Sprintf("late_window_%s_diff_%.2f", sideTag(side), diff),
	}
}
