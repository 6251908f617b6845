// Package guard implements the paper trader's entry gate chain: an ordered
// list of named predicates, each returning a blocking reason tag, exactly
// mirroring the "first failing gate blocks" discipline of §4.7.4.
//
// Grounded on the SafetyRule/SafetyViolation shape of the safety guard this
// project grew out of (internal/services/guard/guard.go, rules.go) and the
// ordered gate pipeline of its risk checker (internal/services/risk/checker.go),
// simplified here to a single synchronous chain since the paper trader's Tick
// already runs at the slow cadence -- there is no need for a background
// circuit-breaker ticker.
package guard

import (
	"fmt"

	"github.com/anvh2/polymarket-btc15/internal/models"
)

// Config is the entry-gate policy, defaults matching §4.7.4.
type Config struct {
	MinEntryPrice        float64 // default 0.05
	MaxEntryPrice        float64 // default 0.95
	MaxConsecutiveLosses int     // default 5
	DailyLossLimitPct    float64 // default 30
	CooldownMinutes      float64 // post-stop-loss cooldown, default 5
	EntryCooldownSeconds float64 // debounce, default 10
	MaxConcurrentPerSlug int     // default 2
}

func DefaultConfig() Config {
	return Config{
		MinEntryPrice:        0.05,
		MaxEntryPrice:        0.95,
		MaxConsecutiveLosses: 5,
		DailyLossLimitPct:    30,
		CooldownMinutes:      5,
		EntryCooldownSeconds: 10,
		MaxConcurrentPerSlug: 2,
	}
}

// Gate is one named predicate in the ordered chain. It returns a non-empty
// blocking reason when the gate fails.
type Gate struct {
	Name  string
	Check func() (blocked bool, reason string)
}

// Chain evaluates gates in order and returns the first blocking reason, or
// ("", false) when every gate passes.
func Chain(gates []Gate) (reason string, blocked bool) {
	for _, g := range gates {
		if b, r := g.Check(); b {
			return r, true
		}
	}
	return "", false
}

// EntryGates builds the ordered, non-mutating portion of the entry chain:
// price band, circuit breaker, duplicate-market guard, daily loss cap,
// post-stop-loss cooldown and entry debounce. Flip-flop and balance are
// evaluated by the paper package because they require mutating or
// cross-cutting state (closing opposite-side positions, the final stake
// amount) this package deliberately has no access to.
func EntryGates(cfg Config, state models.PaperState, rec models.Recommendation, slug string, entryPrice float64, nowMs int64) []Gate {
	return []Gate{
		{
			Name: "price_band",
			Check: func() (bool, string) {
				if entryPrice < cfg.MinEntryPrice || entryPrice > cfg.MaxEntryPrice {
					return true, fmt.Sprintf("price_band_%.2f", entryPrice)
				}
				return false, ""
			},
		},
		{
			Name: "circuit_breaker",
			Check: func() (bool, string) {
				if state.ConsecutiveLosses >= cfg.MaxConsecutiveLosses {
					return true, fmt.Sprintf("circuit_breaker_%d_losses", state.ConsecutiveLosses)
				}
				return false, ""
			},
		},
		{
			Name: "duplicate_market",
			Check: func() (bool, string) {
				for _, p := range state.PositionsForSlug(slug) {
					if p.Side == rec.Side {
						return true, "duplicate_market_" + string(rec.Side)
					}
				}
				return false, ""
			},
		},
		{
			Name: "daily_loss_cap",
			Check: func() (bool, string) {
				if state.DailyLoss >= state.Balance*cfg.DailyLossLimitPct/100 {
					return true, "Daily Loss Limit (%)"
				}
				return false, ""
			},
		},
		{
			Name: "post_sl_cooldown",
			Check: func() (bool, string) {
				if state.LastStopLossTime == 0 {
					return false, ""
				}
				elapsedMin := float64(nowMs-state.LastStopLossTime) / 60_000
				if elapsedMin < cfg.CooldownMinutes {
					return true, fmt.Sprintf("post_sl_cooldown_%.1fmin_left", cfg.CooldownMinutes-elapsedMin)
				}
				return false, ""
			},
		},
		{
			Name: "entry_debounce",
			Check: func() (bool, string) {
				if state.LastEntryTime == 0 {
					return false, ""
				}
				elapsedSec := float64(nowMs-state.LastEntryTime) / 1000
				if elapsedSec < cfg.EntryCooldownSeconds {
					return true, fmt.Sprintf("entry_debounce_%.1fs_left", cfg.EntryCooldownSeconds-elapsedSec)
				}
				return false, ""
			},
		},
	}
}

// Capacity blocks when the slug already holds MaxConcurrentPerSlug open
// positions. Evaluated separately from EntryGates because the paper package
// calls it again after resolving any flip-flop closure, once the position
// count it depends on may have changed.
func Capacity(cfg Config, state models.PaperState, slug string) (blocked bool, reason string) {
	if len(state.PositionsForSlug(slug)) >= cfg.MaxConcurrentPerSlug {
		return true, "capacity"
	}
	return false, ""
}

// Balance blocks when the balance cannot cover the resolved stake plus its
// entry fee.
func Balance(balance, stakePlusFee float64) (blocked bool, reason string) {
	if stakePlusFee > balance {
		return true, "insufficient_balance"
	}
	return false, ""
}
