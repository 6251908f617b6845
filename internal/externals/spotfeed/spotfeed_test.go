package spotfeed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
)

func TestBinance_LastBeforeConnectIsNotOK(t *testing.T) {
	b := New(logger.NewDev(), "BTCUSDT")
	_, _, ok := b.Last()
	assert.False(t, ok)
}

func TestParseFloat(t *testing.T) {
	v, err := parseFloat("100050.25")
	assert.NoError(t, err)
	assert.InDelta(t, 100050.25, v, 1e-9)
}
