package strategy

import (
	"github.com/anvh2/polymarket-btc15/internal/helpers"
	"github.com/anvh2/polymarket-btc15/internal/models"
)

// Category weights for the heuristic probability scorer; sum to 1, mirroring
// the weighted multi-category combination style this project's strategy
// layer grew out of (clamp each category, then combine).
const (
	weightSpotVWAP = 0.35
	weightRSI      = 0.25
	weightMACD     = 0.20
	weightHA       = 0.20
)

// Probability is the legacy heuristic scorer (§4.6). It folds spot/VWAP,
// RSI, MACD and Heiken-Ashi into a raw UP-probability, then applies a
// time-aware adjustment that dampens the estimate toward 0.5 the further out
// the market's resolution is (more time, more noise).
func Probability(snap models.Snapshot) float64 {
	ind := snap.Indicators

	spotScore := 0.0
	if ind.VWAP.Value != 0 {
		spotScore = helpers.Clamp((snap.Spot-ind.VWAP.Value)/ind.VWAP.Value*200, -1, 1)
	}

	rsiScore := helpers.Clamp((ind.RSI-50)/50, -1, 1)

	macdScore := 0.0
	if ind.MACD.Hist != 0 {
		macdScore = helpers.Clamp(ind.MACD.Hist/5, -1, 1)
	}

	haScore := float64(ind.HeikenAshi.Run) / 10
	if ind.HeikenAshi.Color == models.HARed {
		haScore = -haScore
	}
	haScore = helpers.Clamp(haScore, -1, 1)

	raw := weightSpotVWAP*spotScore + weightRSI*rsiScore + weightMACD*macdScore + weightHA*haScore
	rawUp := helpers.Clamp((raw+1)/2, 0, 1)

	weight := helpers.Clamp(1-snap.TimeLeftMin/15, 0.2, 1)
	adjustedUp := 0.5 + (rawUp-0.5)*weight

	return helpers.Clamp(adjustedUp, 0.001, 0.999)
}
