package strategy

import (
	"fmt"

	"github.com/anvh2/polymarket-btc15/internal/models"
)

// sniper implements §4.6's Sniper rule: smaller diff than Late Window but a
// longer HA run and a stricter RSI confirmation, tried first in the
// 0.5-2.0 minute bucket.
func sniper(cfg Config, snap models.Snapshot) models.Recommendation {
	diff := snap.Spot - snap.Strike
	if diff >= -cfg.SniperDiff && diff <= cfg.SniperDiff {
		return models.NoTrade(fmt.Sprintf("sniper_diff_too_small_%.2f", diff))
	}

	side := models.SideUp
	if diff < 0 {
		side = models.SideDown
	}

	ha := snap.Indicators.HeikenAshi
	wantColor := models.HAGreen
	if side == models.SideDown {
		wantColor = models.HARed
	}
	if !(ha.Color == wantColor && ha.Run >= cfg.SniperRun) {
		return models.NoTrade("sniper_ha_run_too_short")
	}

	rsi := snap.Indicators.RSI
	if side == models.SideUp && rsi <= 60 {
		return models.NoTrade(fmt.Sprintf("sniper_rsi_too_low_%.1f", rsi))
	}
	if side == models.SideDown && rsi >= 40 {
		return models.NoTrade(fmt.Sprintf("sniper_rsi_too_high_%.1f", rsi))
	}

	odds, _ := snap.Odds.Side(side)
	if odds >= cfg.SniperOddsCap {
		return models.NoTrade(fmt.Sprintf("odds_too_high_%s_%.2f", sideTag(side), odds))
	}

	return models.Recommendation{
		Action:     models.ActionEnter,
		Side:       side,
		Strategy:   models.StrategySniper,
		Confidence: models.ConfidenceMax,
		Reason:     fmt.Sprintf("sniper_%s_diff_%.2f", sideTag(side), diff),
	}
}
