// Package strike resolves and latches the BTC price a market resolves
// against: parsed from question text, failing that from metadata, failing
// that from the first chainlink observation after market start — with a
// poll-file override that always wins.
package strike

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
	"github.com/anvh2/polymarket-btc15/internal/models"
	"go.uber.org/zap"
)

const (
	minPlausible = 1_000
	maxPlausible = 2_000_000
)

var questionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)price to beat[^0-9]*\$?([0-9,]+(?:\.[0-9]+)?)`),
	regexp.MustCompile(`(?i)above\s+\$?([0-9,]+(?:\.[0-9]+)?)`),
	regexp.MustCompile(`>\s*\$?([0-9,]+(?:\.[0-9]+)?)`),
}

var metadataKeyHint = regexp.MustCompile(`(?i)(price|strike|threshold|target|beat)`)

// ParseFromQuestion tries the question-text regex family. ok is false when
// no pattern matches or the match falls outside the plausible BTC-price
// range.
func ParseFromQuestion(question string) (float64, bool) {
	for _, pattern := range questionPatterns {
		m := pattern.FindStringSubmatch(question)
		if len(m) < 2 {
			continue
		}
		if v, ok := parsePlausible(m[1]); ok {
			return v, true
		}
	}
	return 0, false
}

// ParseFromMetadata scans metadata keys for one containing
// price|strike|threshold|target|beat whose value parses to a plausible BTC
// price.
func ParseFromMetadata(metadata map[string]string) (float64, bool) {
	for k, v := range metadata {
		if !metadataKeyHint.MatchString(k) {
			continue
		}
		if val, ok := parsePlausible(v); ok {
			return val, true
		}
	}
	return 0, false
}

func parsePlausible(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if v <= minPlausible || v >= maxPlausible {
		return 0, false
	}
	return v, true
}

// Latch resolves and remembers the strike for each market slug it sees for
// the first time. A file poll (see SetOverride) can override the latched
// value for the lifetime of the process.
type Latch struct {
	logger *logger.Logger

	mu        sync.Mutex
	latched   map[string]float64
	override  *float64
}

func New(log *logger.Logger) *Latch {
	return &Latch{logger: log, latched: make(map[string]float64)}
}

// Resolve returns the strike for a market, latching it on first sight via
// question text, then metadata, then (if chainlinkAfterStart is provided)
// the first chainlink observation after market start.
func (l *Latch) Resolve(market models.Market, chainlinkAfterStart func() (float64, bool)) (float64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.override != nil {
		return *l.override, true
	}

	if v, ok := l.latched[market.Slug]; ok {
		return v, true
	}

	if v, ok := ParseFromQuestion(market.Question); ok {
		l.latched[market.Slug] = v
		return v, true
	}

	if v, ok := ParseFromMetadata(market.Metadata); ok {
		l.latched[market.Slug] = v
		return v, true
	}

	if chainlinkAfterStart != nil {
		if v, ok := chainlinkAfterStart(); ok {
			l.latched[market.Slug] = v
			l.logger.Info("strike latched from chainlink", zap.String("slug", market.Slug), zap.Float64("strike", v))
			return v, true
		}
	}

	return 0, false
}

// SetOverride installs a process-lifetime strike override, read from
// strike.txt by the orchestrator's strike poll.
func (l *Latch) SetOverride(v float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.override = &v
}

// ReadOverrideFile parses strike.txt's lone numeric line. ok is false when
// the file is absent or unparsable.
func ReadOverrideFile(path string) (float64, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
