// Package risk implements the paper trader's position-sizing and fee model:
// Kelly-fraction sizing with clamped bounds, fixed per-strategy sizing as a
// fallback, and the Polymarket-style dynamic fee curve.
//
// Grounded on the clamp-and-bound style of the risk engine this project grew
// out of (internal/services/risk/risk.go: RecommendLeverage,
// PositionSizePercent), generalized from leveraged-futures sizing to binary
// stake sizing.
package risk

import "github.com/anvh2/polymarket-btc15/internal/helpers"

// Config is the sizing/fee policy, defaults matching §4.7/§4.9.
type Config struct {
	UseKelly               bool
	KellyFraction          float64 // conservatism multiplier, default 0.5
	MinKellyBet            float64 // default 3
	MaxKellyBet            float64 // default 5
	FixedLateWindow        float64 // default 5
	FixedMomentum          float64 // default 4
	FixedMeanReversion     float64 // default 3
	FixedFallback          float64 // default 3 (= minBet)
	UseDynamicFees         bool
	FeePct                 float64 // default applied when UseDynamicFees is false
}

func DefaultConfig() Config {
	return Config{
		UseKelly:           true,
		KellyFraction:      0.5,
		MinKellyBet:        3,
		MaxKellyBet:        5,
		FixedLateWindow:    5,
		FixedMomentum:      4,
		FixedMeanReversion: 3,
		FixedFallback:      3,
		UseDynamicFees:     true,
		FeePct:             2,
	}
}

// KellyFraction returns (p - price) / (1 - price), the binary-bet Kelly
// fraction for a win probability p at market price (odds) q.
func KellyFraction(p, price float64) float64 {
	if price >= 1 {
		return 0
	}
	return (p - price) / (1 - price)
}

// KellyStake returns balance*kellyFraction*f_k clamped to [minKellyBet,
// maxKellyBet].
func KellyStake(cfg Config, balance, p, price float64) float64 {
	fk := KellyFraction(p, price)
	raw := balance * cfg.KellyFraction * fk
	return helpers.Clamp(raw, cfg.MinKellyBet, cfg.MaxKellyBet)
}

// Strategy identifies which fixed-sizing bucket to use when Kelly sizing is
// disabled or the recommendation carries no probability estimate. Declared
// locally (rather than importing models.Strategy) to keep this package
// dependency-free of the strategy/paper packages it's consumed by.
type Strategy string

const (
	StrategyLateWindow    Strategy = "LATE_WINDOW"
	StrategyMomentum      Strategy = "MOMENTUM"
	StrategyMeanReversion Strategy = "MEAN_REVERSION_legacy"
)

// FixedStake returns the configured flat stake for a strategy.
func FixedStake(cfg Config, strategy Strategy) float64 {
	switch strategy {
	case StrategyLateWindow:
		return cfg.FixedLateWindow
	case StrategyMomentum:
		return cfg.FixedMomentum
	case StrategyMeanReversion:
		return cfg.FixedMeanReversion
	default:
		return cfg.FixedFallback
	}
}

// Stake picks Kelly sizing when enabled and a probability is available,
// falling back to the fixed per-strategy stake otherwise.
func Stake(cfg Config, strategy Strategy, balance, price float64, probability *float64) float64 {
	if cfg.UseKelly && probability != nil {
		return KellyStake(cfg, balance, *probability, price)
	}
	return FixedStake(cfg, strategy)
}

// Fee returns the trading fee for a notional at price p. The Polymarket
// dynamic-fee curve is fee = notional * 0.25 * (p*(1-p))^2; the flat model
// is notional * feePct/100.
func Fee(cfg Config, notional, price float64) float64 {
	if cfg.UseDynamicFees {
		pq := price * (1 - price)
		return notional * 0.25 * pq * pq
	}
	return notional * cfg.FeePct / 100
}
