package models

// ActivityType tags an ActivityEvent for the dashboard and notifier sinks.
type ActivityType string

const (
	ActivityTrade       ActivityType = "trade"
	ActivityDailyReset  ActivityType = "daily_reset"
	ActivityBlocked     ActivityType = "blocked"
	ActivityError       ActivityType = "error"
)

// ActivityEvent is a small tagged record emitted on every notable state
// transition and fanned out to the dashboard broadcaster and notifier sinks.
type ActivityEvent struct {
	Type        ActivityType   `json:"type"`
	Message     string         `json:"message"`
	TimestampMs int64          `json:"timestampMs"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// SignalRow is one row of the signals sink (one per slow tick).
type SignalRow struct {
	TimestampMs  int64   `json:"timestampMs"`
	TimeLeftMin  float64 `json:"timeLeftMin"`
	Strategy     Strategy `json:"strategy"`
	Recommendation Action `json:"recommendation"`
	Probability  float64 `json:"probability"`
	OddsUp       float64 `json:"oddsUp"`
	OddsDown     float64 `json:"oddsDown"`
	EdgeUp       float64 `json:"edgeUp"`
	EdgeDown     float64 `json:"edgeDown"`
	Strike       float64 `json:"strike"`
	Spot         float64 `json:"spot"`
	Gap          float64 `json:"gap"`
}

// DashboardState is the {type:"state"} frame payload.
type DashboardState struct {
	MarketName    string         `json:"marketName"`
	MarketSlug    string         `json:"marketSlug"`
	TimeLeftStr   string         `json:"timeLeftStr"`
	TimeLeftMin   float64        `json:"timeLeftMin"`
	Side          Side           `json:"side,omitempty"`
	Phase         string         `json:"phase"`
	Conviction    Confidence     `json:"conviction"`
	Advice        string         `json:"advice"`
	BinancePrice  float64        `json:"binancePrice"`
	CurrentPrice  float64        `json:"currentPrice"`
	StrikePrice   float64        `json:"strikePrice"`
	Gap           float64        `json:"gap"`
	PolyUp        float64        `json:"polyUp"`
	PolyDown      float64        `json:"polyDown"`
	TotalEquity   float64        `json:"totalEquity"`
	DailyPnl      float64        `json:"dailyPnl"`
	PaperBalance  float64        `json:"paperBalance"`
	Positions     []Position     `json:"position"`
	PosPnl        float64        `json:"posPnl"`
	IndHeiken     HeikenAshi     `json:"indHeiken"`
	IndRsi        float64        `json:"indRsi"`
	IndMacd       MACD           `json:"indMacd"`
	IndVwap       float64        `json:"indVwap"`
	IndEma        map[string]float64 `json:"indEma"`
	RecentTrades  []TradeRecord  `json:"recentTrades"`
	WinStatsToday WinStats       `json:"winStatsToday"`
	WinStatsAll   WinStats       `json:"winStatsAll"`
}

// WinStats summarizes win/loss counts for the dashboard footer.
type WinStats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}
