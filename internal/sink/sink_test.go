package sink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvh2/polymarket-btc15/internal/models"
)

func TestNoopSignalSink(t *testing.T) {
	var s SignalSink = NoopSignalSink{}
	assert.Nil(t, s.Record(context.Background(), models.SignalRow{Strategy: models.StrategySniper}))
}

func TestNoopTradeSink(t *testing.T) {
	var s TradeSink = NoopTradeSink{}
	assert.Nil(t, s.Record(context.Background(), models.TradeRecord{ID: "t1"}))
}
