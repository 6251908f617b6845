package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKellyStake_ClampedToMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KellyFraction = 0.5
	cfg.MinKellyBet = 3
	cfg.MaxKellyBet = 5

	stake := KellyStake(cfg, 100, 0.70, 0.50)
	assert.InDelta(t, 5.0, stake, 1e-9)
}

func TestKellyStake_ClampedToMin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KellyFraction = 0.5
	cfg.MinKellyBet = 3
	cfg.MaxKellyBet = 5

	// f_k negative (price above probability) clamps up to the floor.
	stake := KellyStake(cfg, 100, 0.40, 0.50)
	assert.InDelta(t, 3.0, stake, 1e-9)
}

func TestFixedStake_ByStrategy(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg.FixedLateWindow, FixedStake(cfg, StrategyLateWindow))
	assert.Equal(t, cfg.FixedMomentum, FixedStake(cfg, StrategyMomentum))
	assert.Equal(t, cfg.FixedFallback, FixedStake(cfg, Strategy("SNIPER")))
}

func TestFee_DynamicCurve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseDynamicFees = true

	fee := Fee(cfg, 100, 0.5)
	assert.InDelta(t, 100*0.25*(0.5*0.5)*(0.5*0.5), fee, 1e-9)
}

func TestFee_FlatPercent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseDynamicFees = false
	cfg.FeePct = 2

	fee := Fee(cfg, 100, 0.5)
	assert.InDelta(t, 2.0, fee, 1e-9)
}
