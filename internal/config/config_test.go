package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, float64(1000), cfg.Paper.StartBalance)

	assert.Equal(t, "https://gamma-api.polymarket.com", cfg.Polymarket.GammaURL)
	assert.Equal(t, "https://clob.polymarket.com", cfg.Polymarket.ClobURL)
	assert.True(t, cfg.Polymarket.AutoSelectLatest)

	assert.Equal(t, "./data/state.json", cfg.State.File)
	assert.Equal(t, "./strike.txt", cfg.State.StrikeFile)

	assert.Equal(t, 250*time.Millisecond, cfg.Cadence.FastTick)
	assert.Equal(t, 8, cfg.Cadence.SlowTicks)
	assert.Equal(t, 5*time.Second, cfg.Cadence.StrikePoll)
	assert.Equal(t, 10, cfg.Cadence.MaxConsecutiveErrors)
}
