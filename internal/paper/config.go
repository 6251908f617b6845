package paper

import (
	"github.com/anvh2/polymarket-btc15/internal/guard"
	"github.com/anvh2/polymarket-btc15/internal/risk"
)

// Config is the full paper-trader policy, defaults matching §4.7/§6.
type Config struct {
	Guard guard.Config
	Risk  risk.Config

	StopLossRoiPct             float64 // default -0.40
	TakeProfitRoiPct           float64 // legacy/fallback take-profit, default 0.30
	MomentumTakeProfitRoiPct   float64 // default 0.50
	StopLossGracePeriodSeconds float64 // default 15
	ResolutionThreshold        float64 // default 0.05
	TimeGuardMinutes           float64 // default 2
	LateWindowTimeGuardMinutes float64 // default 0.5
	MeanReversionTimeStopMin   float64 // default 3
}

func DefaultConfig() Config {
	return Config{
		Guard: guard.DefaultConfig(),
		Risk:  risk.DefaultConfig(),

		StopLossRoiPct:             -0.40,
		TakeProfitRoiPct:           0.30,
		MomentumTakeProfitRoiPct:   0.50,
		StopLossGracePeriodSeconds: 15,
		ResolutionThreshold:        0.05,
		TimeGuardMinutes:           2,
		LateWindowTimeGuardMinutes: 0.5,
		MeanReversionTimeStopMin:   3,
	}
}
