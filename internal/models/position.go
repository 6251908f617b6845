package models

// Result is the settled/closed outcome of a position.
type Result string

const (
	ResultWin       Result = "WIN"
	ResultLoss      Result = "LOSS"
	ResultBreakeven Result = "BREAKEVEN"
)

// Position is one open paper-trading stake on a market outcome.
type Position struct {
	ID                  string   `json:"id"`
	MarketSlug          string   `json:"marketSlug"`
	Side                Side     `json:"side"`
	EntryPrice          float64  `json:"entryPrice"`
	Amount              float64  `json:"amount"` // stake + entry fee
	Shares              float64  `json:"shares"`
	EntryTimeMs         int64    `json:"entryTimeMs"`
	Strategy            Strategy `json:"strategy"`
	StrikePrice         float64  `json:"strikePrice"`
	EndDateMs           int64    `json:"endDateMs"`
	HitBreakevenTrigger bool     `json:"hitBreakevenTrigger"`
}

// TradeRecord is the append-only ledger row emitted for every open/close.
type TradeRecord struct {
	ID         string   `json:"id"`
	MarketSlug string   `json:"marketSlug"`
	Side       Side     `json:"side"`
	Strategy   Strategy `json:"strategy"`
	EntryPrice float64  `json:"entryPrice"`
	ExitPrice  float64  `json:"exitPrice"`
	Shares     float64  `json:"shares"`
	PNL        float64  `json:"pnl"`
	Result     Result   `json:"result"`
	OpenedAtMs int64    `json:"openedAtMs"`
	ClosedAtMs int64    `json:"closedAtMs"`
	Reason     string   `json:"reason"`
}

// PaperState is the fully persisted state of the paper trader.
type PaperState struct {
	Balance           float64       `json:"balance"`
	Positions         []Position    `json:"positions"`
	DailyLoss         float64       `json:"dailyLoss"`
	LastStopLossTime  int64         `json:"lastStopLossTime"`
	RecentResults     []Result      `json:"recentResults"` // ring of last 10
	LastDailyReset    int64         `json:"lastDailyReset"`
	LastExitTime      int64         `json:"lastExitTime"`
	LastEntryTime     int64         `json:"lastEntryTime"`
	ConsecutiveLosses int           `json:"consecutiveLosses"`
	TradeHistory      []TradeRecord `json:"tradeHistory"`
}

const recentResultsCap = 10

// PushResult appends a result to the ring, keeping only the last 10.
func (s *PaperState) PushResult(r Result) {
	s.RecentResults = append(s.RecentResults, r)
	if len(s.RecentResults) > recentResultsCap {
		s.RecentResults = s.RecentResults[len(s.RecentResults)-recentResultsCap:]
	}
}

// PositionsForSlug returns the open positions on a given market slug.
func (s *PaperState) PositionsForSlug(slug string) []Position {
	var out []Position
	for _, p := range s.Positions {
		if p.MarketSlug == slug {
			out = append(out, p)
		}
	}
	return out
}
