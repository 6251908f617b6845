package paper

import (
	"errors"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
	"github.com/anvh2/polymarket-btc15/internal/models"
)

type memStore struct {
	saved any
}

func (m *memStore) Save(state any) error {
	m.saved = state
	return nil
}

func (m *memStore) Load(target any) error {
	return errors.New("no state yet")
}

func newTestTrader(balance float64) *Trader {
	return New(logger.NewDev(), &memStore{}, DefaultConfig(), balance)
}

func oddsPtr(up, down float64) models.Odds {
	return models.Odds{Up: &up, Down: &down}
}

var market1 = models.Market{Slug: "m1", EndDateMs: 1_000_000_000}
