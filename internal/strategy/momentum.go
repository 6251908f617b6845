package strategy

import (
	"fmt"

	"github.com/anvh2/polymarket-btc15/internal/models"
)

// momentum implements §4.6's Momentum rule: confirmed two-candle close on
// the side of strike, growing MACD histogram, matching EMA/HA/RSI gates,
// and an odds gate that rejects over-priced favorites.
func momentum(cfg Config, snap models.Snapshot) models.Recommendation {
	candles := snap.Candles
	if len(candles) < 2 {
		return models.NoTrade("momentum_insufficient_candles")
	}

	diff := snap.Spot - snap.Strike
	if diff > cfg.MomentumDiff {
		return momentumSide(cfg, snap, models.SideUp, diff)
	}
	if diff < -cfg.MomentumDiff {
		return momentumSide(cfg, snap, models.SideDown, diff)
	}

	return models.NoTrade(fmt.Sprintf("momentum_diff_too_small_%.2f", diff))
}

func momentumSide(cfg Config, snap models.Snapshot, side models.Side, diff float64) models.Recommendation {
	candles := snap.Candles
	last2 := candles[len(candles)-2:]

	for _, c := range last2 {
		if side == models.SideUp && c.Close <= snap.Strike {
			return models.NoTrade("momentum_candle_not_confirmed_up")
		}
		if side == models.SideDown && c.Close >= snap.Strike {
			return models.NoTrade("momentum_candle_not_confirmed_down")
		}
	}

	macd := snap.Indicators.MACD
	if side == models.SideUp {
		if !(macd.Hist > macd.HistPrev && macd.HistPrev > 0) {
			return models.NoTrade("momentum_macd_not_growing_up")
		}
	} else {
		if !(macd.Hist < macd.HistPrev && macd.HistPrev < 0) {
			return models.NoTrade("momentum_macd_not_growing_down")
		}
	}

	ha := snap.Indicators.HeikenAshi
	rsi := snap.Indicators.RSI

	if side == models.SideUp {
		if !(snap.Spot > snap.Indicators.EMA21) {
			return models.NoTrade("momentum_spot_below_ema21")
		}
		if !(ha.Color == models.HAGreen && ha.Run >= 2) {
			return models.NoTrade("momentum_ha_not_green_run")
		}
		if !(rsi >= 40 && rsi <= 80) {
			return models.NoTrade(fmt.Sprintf("momentum_rsi_out_of_band_%.1f", rsi))
		}
	} else {
		if !(snap.Spot < snap.Indicators.EMA21) {
			return models.NoTrade("momentum_spot_above_ema21")
		}
		if !(ha.Color == models.HARed && ha.Run >= 2) {
			return models.NoTrade("momentum_ha_not_red_run")
		}
		if !(rsi >= 20 && rsi <= 60) {
			return models.NoTrade(fmt.Sprintf("momentum_rsi_out_of_band_%.1f", rsi))
		}
	}

	odds, _ := snap.Odds.Side(side)
	if !(odds < cfg.MomentumOddsCap && odds < 1-cfg.MinOddsEdge) {
		return models.NoTrade(fmt.Sprintf("odds_too_high_%s_%.2f", sideTag(side), odds))
	}

	return models.Recommendation{
		Action:     models.ActionEnter,
		Side:       side,
		Strategy:   models.StrategyMomentum,
		Confidence: models.ConfidenceHigh,
		Reason:     fmt.Sprintf("momentum_%s_diff_%.2f", sideTag(side), diff),
	}
}

func sideTag(s models.Side) string {
	if s == models.SideUp {
		return "up"
	}
	return "down"
}
