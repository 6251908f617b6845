package orchestrator

import (
	"fmt"
	"time"

	"github.com/anvh2/polymarket-btc15/internal/candle"
	"github.com/anvh2/polymarket-btc15/internal/models"
)

// renderDashboard builds the {type:"state"} frame payload from the latest
// fast-tick spot price and the trader's read-only snapshot. It never needs
// the trader's lock itself; its one side effect is that the strike lookup
// may latch a strike parsed from the market's question or metadata.
func (o *Orchestrator) renderDashboard(state models.PaperState, spot float64, tsMs int64) models.DashboardState {
	window := candle.ClockWindow(tsMs, &o.market)
	timeLeftMin := window.RemainingMin()

	strikePrice, _ := o.latch.Resolve(o.market, nil)

	var posPnl float64
	for _, p := range state.Positions {
		posPnl += positionPnl(p, o.lastOdds)
	}

	var polyUp, polyDown float64
	if o.lastOdds.Up != nil {
		polyUp = *o.lastOdds.Up
	}
	if o.lastOdds.Down != nil {
		polyDown = *o.lastOdds.Down
	}

	return models.DashboardState{
		MarketName:   o.market.Question,
		MarketSlug:   o.market.Slug,
		TimeLeftStr:  formatTimeLeft(timeLeftMin),
		TimeLeftMin:  timeLeftMin,
		Phase:        phaseFor(timeLeftMin),
		BinancePrice: spot,
		CurrentPrice: spot,
		StrikePrice:  strikePrice,
		Gap:          spot - strikePrice,
		PolyUp:       polyUp,
		PolyDown:     polyDown,
		TotalEquity:  state.Balance + posPnl,
		DailyPnl:     -state.DailyLoss,
		PaperBalance: state.Balance,
		Positions:    state.Positions,
		PosPnl:       posPnl,
		RecentTrades: recentTrades(state.TradeHistory, 10),
		WinStatsAll:  winStats(state.RecentResults),
	}
}

// positionPnl estimates a position's unrealized PnL against the latest
// known odds, falling back to 0 when no fresh quote for its side exists yet.
func positionPnl(p models.Position, odds models.Odds) float64 {
	price, ok := odds.Side(p.Side)
	if !ok {
		return 0
	}
	return p.Shares*price - p.Amount
}

func recentTrades(history []models.TradeRecord, n int) []models.TradeRecord {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

func winStats(results []models.Result) models.WinStats {
	var stats models.WinStats
	for _, r := range results {
		switch r {
		case models.ResultWin:
			stats.Wins++
		case models.ResultLoss:
			stats.Losses++
		}
	}
	return stats
}

func formatTimeLeft(min float64) string {
	if min < 0 {
		min = 0
	}
	d := time.Duration(min * float64(time.Minute))
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func phaseFor(timeLeftMin float64) string {
	switch {
	case timeLeftMin < 0:
		return "EXPIRED"
	case timeLeftMin <= 2:
		return "CLOSING"
	default:
		return "ACTIVE"
	}
}
