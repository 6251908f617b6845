package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvh2/polymarket-btc15/internal/models"
)

func upPtr(v float64) *float64 { return &v }

func baseSnapshot() models.Snapshot {
	candles := make([]models.Candle, 31)
	for i := range candles {
		candles[i] = models.Candle{OpenTime: int64(i * 60_000), Open: 100_000, High: 100_100, Low: 99_900, Close: 100_020, Volume: 1}
	}
	candles[len(candles)-2].Close = 100_020
	candles[len(candles)-1].Close = 100_080

	return models.Snapshot{
		Spot:        100_100,
		Strike:      100_000,
		Candles:     candles,
		TimeLeftMin: 5,
		Indicators: models.Indicators{
			EMA21:      100_000,
			RSI:        62,
			MACD:       models.MACD{Hist: 5, HistPrev: 3},
			HeikenAshi: models.HeikenAshi{Color: models.HAGreen, Run: 2},
			VWAP:       models.VWAP{Value: 100_000},
			Ready:      true,
		},
		Odds: models.Odds{Up: upPtr(0.60), Down: upPtr(0.40)},
	}
}

func TestEvaluate_MomentumUpEntry(t *testing.T) {
	rec := Evaluate(DefaultConfig(), baseSnapshot())

	assert.Equal(t, models.ActionEnter, rec.Action)
	assert.Equal(t, models.SideUp, rec.Side)
	assert.Equal(t, models.StrategyMomentum, rec.Strategy)
	assert.Equal(t, models.ConfidenceHigh, rec.Confidence)
}

func TestEvaluate_MomentumBlockedByOdds(t *testing.T) {
	snap := baseSnapshot()
	snap.Odds = models.Odds{Up: upPtr(0.88), Down: upPtr(0.12)}

	rec := Evaluate(DefaultConfig(), snap)

	assert.Equal(t, models.ActionNoTrade, rec.Action)
	assert.Equal(t, "odds_too_high_up_0.88", rec.Reason)
}

func TestEvaluate_MissingDataBeforeThirtyCandles(t *testing.T) {
	snap := baseSnapshot()
	snap.Candles = snap.Candles[:10]

	rec := Evaluate(DefaultConfig(), snap)
	assert.Equal(t, models.ActionNoTrade, rec.Action)
	assert.Equal(t, "missing_data", rec.Reason)
}

func TestEvaluate_TooLateIsNoTrade(t *testing.T) {
	snap := baseSnapshot()
	snap.TimeLeftMin = 0.3

	rec := Evaluate(DefaultConfig(), snap)
	assert.Equal(t, models.ActionNoTrade, rec.Action)
	assert.Equal(t, "too_late_time_left_0.30", rec.Reason)
}
