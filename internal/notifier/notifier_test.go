package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
	"github.com/anvh2/polymarket-btc15/internal/libs/queue"
	"github.com/anvh2/polymarket-btc15/internal/models"
)

type fakeNotify struct {
	messages []string
}

func (f *fakeNotify) PushNotify(ctx context.Context, message string) error {
	f.messages = append(f.messages, message)
	return nil
}

type fakeTradeSink struct {
	recorded []models.TradeRecord
}

func (f *fakeTradeSink) Record(ctx context.Context, t models.TradeRecord) error {
	f.recorded = append(f.recorded, t)
	return nil
}

func TestDispatcherDrainsActivityAndTrades(t *testing.T) {
	disc := &fakeNotify{}
	trades := &fakeTradeSink{}
	d := New(logger.NewDev(), queue.New(), disc, nil, 0, trades)

	ctx := context.Background()
	d.PushActivity(ctx, models.ActivityEvent{Type: models.ActivityTrade, Message: "opened UP"})
	d.PushActivity(ctx, models.ActivityEvent{Type: models.ActivityError, Message: "strike unresolved"})
	d.PushTrade(ctx, models.TradeRecord{ID: "t1"})

	d.drainActivity(ctx)
	d.drainTrades(ctx)

	assert.Equal(t, []string{"opened UP", "strike unresolved"}, disc.messages)
	assert.Len(t, trades.recorded, 1)
	assert.Equal(t, "t1", trades.recorded[0].ID)
}

func TestDispatcherIgnoresNonNotifyingActivity(t *testing.T) {
	disc := &fakeNotify{}
	d := New(logger.NewDev(), queue.New(), disc, nil, 0, &fakeTradeSink{})

	ctx := context.Background()
	d.PushActivity(ctx, models.ActivityEvent{Type: models.ActivityBlocked, Message: "tick"})
	d.drainActivity(ctx)

	assert.Empty(t, disc.messages)
}

func TestDispatcherRunStopsOnSignal(t *testing.T) {
	d := New(logger.NewDev(), queue.New(), nil, nil, 0, &fakeTradeSink{})
	stop := make(chan struct{})

	done := make(chan struct{})
	go func() {
		d.Run(context.Background(), stop)
		close(done)
	}()

	close(stop)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after stop signal")
	}
}
