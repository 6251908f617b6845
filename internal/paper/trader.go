// Package paper implements the paper trader: PaperState plus its Tick-driven
// lifecycle (exits before entries, sizing, fees, bookkeeping) and its
// atomic file-backed persistence.
//
// Grounded on the mutex-guarded state and deep-copy-getter idiom of the
// trading-state service this project grew out of (internal/services/state/
// state.go) and the atomic write-then-rename persistence of
// internal/libs/storage/simpledb/db.go, generalized here from its original
// TradingState to models.PaperState.
package paper

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
	"github.com/anvh2/polymarket-btc15/internal/models"
)

// Store is the persistence boundary Trader depends on; satisfied by
// simpledb.Storage.
type Store interface {
	Save(state any) error
	Load(target any) error
}

// Trader owns PaperState and every mutation to it. A single orchestrator
// consumer task is expected to call Tick; there is no internal ticker.
type Trader struct {
	mu    sync.Mutex
	log   *logger.Logger
	store Store
	cfg   Config
	state models.PaperState
	seq   int64
}

// New loads PaperState from store (defaulting to startBalance on a missing
// or unreadable file, per §7 "load errors -> default state").
func New(log *logger.Logger, store Store, cfg Config, startBalance float64) *Trader {
	t := &Trader{log: log, store: store, cfg: cfg}

	var state models.PaperState
	if err := store.Load(&state); err != nil {
		log.Info("paper state not loaded, starting fresh", zap.Error(err))
		state = models.PaperState{Balance: startBalance}
	}
	t.state = state
	return t
}

// Snapshot returns a value copy of the current state, safe for the fast
// tick's read-only UI rendering.
func (t *Trader) Snapshot() models.PaperState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copyState(t.state)
}

func copyState(s models.PaperState) models.PaperState {
	out := s
	out.Positions = append([]models.Position(nil), s.Positions...)
	out.RecentResults = append([]models.Result(nil), s.RecentResults...)
	out.TradeHistory = append([]models.TradeRecord(nil), s.TradeHistory...)
	return out
}

func (t *Trader) persist() {
	if err := t.store.Save(t.state); err != nil {
		// Persistence failure is a warning, never fatal; continue in-memory.
		t.log.Warn("failed to persist paper state", zap.Error(err))
	}
}

func (t *Trader) nextID(slug string, nowMs int64) string {
	t.seq++
	return fmt.Sprintf("%s-%d-%d", slug, nowMs, t.seq)
}

func utcDate(nowMs int64) string {
	return time.UnixMilli(nowMs).UTC().Format("2006-01-02")
}

// dailyReset zeroes dailyLoss the first time a tick's UTC date differs from
// lastDailyReset's.
func (t *Trader) dailyReset(nowMs int64) (reset bool) {
	today := utcDate(nowMs)
	last := utcDate(t.state.LastDailyReset)
	if today == last {
		return false
	}
	t.state.DailyLoss = 0
	t.state.LastDailyReset = nowMs
	return true
}
