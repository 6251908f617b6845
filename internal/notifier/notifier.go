// Package notifier fans orchestrator activity out to the push-notification
// channels and the trade sink without ever blocking the tick loop.
//
// Grounded on the teacher's in-process topic queue (internal/libs/queue):
// the orchestrator Push()es onto the "activity"/"trades" topics (an O(1),
// never-blocking append) and a background poll loop Consume()s them under
// its own consumer group, so a slow Discord POST or a stalled sink write
// only ever delays the notifier goroutine, never the tick that produced the
// event -- matching the "non-blocking failures" discipline this project
// carries throughout.
package notifier

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/anvh2/polymarket-btc15/internal/externals/discord"
	"github.com/anvh2/polymarket-btc15/internal/externals/telegram"
	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
	"github.com/anvh2/polymarket-btc15/internal/libs/queue"
	"github.com/anvh2/polymarket-btc15/internal/models"
	"github.com/anvh2/polymarket-btc15/internal/sink"
)

const (
	activityTopic = "activity"
	tradesTopic   = "trades"
	consumerGroup = "notifier"
	pollInterval  = 200 * time.Millisecond
)

// Dispatcher owns the background consume loops. Push is safe to call from
// the orchestrator's single consumer task; Run must be started once in its
// own goroutine.
type Dispatcher struct {
	log      *logger.Logger
	q        *queue.Queue
	discord  discord.Notify
	telegram telegram.Notify
	chatID   int64
	trades   sink.TradeSink
}

func New(log *logger.Logger, q *queue.Queue, disc discord.Notify, tg telegram.Notify, chatID int64, trades sink.TradeSink) *Dispatcher {
	return &Dispatcher{log: log, q: q, discord: disc, telegram: tg, chatID: chatID, trades: trades}
}

// PushActivity enqueues an activity event for async notification.
func (d *Dispatcher) PushActivity(ctx context.Context, event models.ActivityEvent) {
	if err := d.q.Push(ctx, activityTopic, event); err != nil {
		d.log.Warn("failed to enqueue activity event", zap.Error(err))
	}
}

// PushTrade enqueues a trade row for async sink persistence.
func (d *Dispatcher) PushTrade(ctx context.Context, trade models.TradeRecord) {
	if err := d.q.Push(ctx, tradesTopic, trade); err != nil {
		d.log.Warn("failed to enqueue trade row", zap.Error(err))
	}
}

// Run drains both topics on a fixed poll interval until stop fires.
func (d *Dispatcher) Run(ctx context.Context, stop <-chan struct{}) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.drainActivity(ctx)
			d.drainTrades(ctx)
		}
	}
}

func (d *Dispatcher) drainActivity(ctx context.Context) {
	for {
		msg, err := d.q.Consume(ctx, activityTopic, consumerGroup)
		if err != nil {
			return
		}
		event, ok := msg.Data.(models.ActivityEvent)
		if !ok {
			msg.Commit(ctx)
			continue
		}
		d.notify(ctx, event)
		msg.Commit(ctx)
	}
}

func (d *Dispatcher) drainTrades(ctx context.Context) {
	for {
		msg, err := d.q.Consume(ctx, tradesTopic, consumerGroup)
		if err != nil {
			return
		}
		trade, ok := msg.Data.(models.TradeRecord)
		if !ok {
			msg.Commit(ctx)
			continue
		}
		if err := d.trades.Record(ctx, trade); err != nil {
			d.log.Warn("trade sink write failed", zap.Error(err))
		}
		msg.Commit(ctx)
	}
}

func (d *Dispatcher) notify(ctx context.Context, event models.ActivityEvent) {
	if event.Type != models.ActivityTrade && event.Type != models.ActivityError {
		return
	}

	if d.discord != nil {
		if err := d.discord.PushNotify(ctx, event.Message); err != nil {
			d.log.Warn("discord push failed", zap.Error(err))
		}
	}
	if d.telegram != nil && d.chatID != 0 {
		if err := d.telegram.PushNotify(ctx, d.chatID, event.Message); err != nil {
			d.log.Warn("telegram push failed", zap.Error(err))
		}
	}
}
