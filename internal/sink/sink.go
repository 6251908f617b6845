// Package sink declares the typed append-only sinks a slow tick writes to:
// one signal row per slow tick, one trade row per open/close. No SQLite
// driver exists anywhere in the retrieval pack (the corpus's two SQL stacks
// are MySQL-via-gorm and Postgres-via-pgx, neither of which is SQLite), so a
// concrete embedded-DB implementation is deliberately not fabricated here --
// see DESIGN.md. NoopSignalSink and NoopTradeSink satisfy the two interfaces
// so the orchestrator has something to wire by default.
package sink

import (
	"context"

	"github.com/anvh2/polymarket-btc15/internal/models"
)

// SignalSink records one row per slow tick.
type SignalSink interface {
	Record(ctx context.Context, row models.SignalRow) error
}

// TradeSink records one row per open/close event.
type TradeSink interface {
	Record(ctx context.Context, trade models.TradeRecord) error
}

// NoopSignalSink and NoopTradeSink discard every row. They are the defaults
// until a concrete embedded store is wired in.
type NoopSignalSink struct{}

func (NoopSignalSink) Record(context.Context, models.SignalRow) error { return nil }

type NoopTradeSink struct{}

func (NoopTradeSink) Record(context.Context, models.TradeRecord) error { return nil }
