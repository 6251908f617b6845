package polymarket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
)

func TestREST_Market(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"slug":"btc-15m","question":"BTC up?","clobTokenIds":["up1","down1"],"endDate":"2026-07-30T00:15:00Z"}]`))
	}))
	defer srv.Close()

	c := New(logger.NewDev(), srv.URL, srv.URL, 100)
	m, err := c.Market(context.Background(), "btc-15m")
	require.NoError(t, err)
	assert.Equal(t, "btc-15m", m.Slug)
	assert.Equal(t, "up1", m.UpTokenID)
	assert.Equal(t, "down1", m.DownTokenID)
	assert.NotZero(t, m.EndDateMs)
}

func TestREST_Price(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"price":0.62}`))
	}))
	defer srv.Close()

	c := New(logger.NewDev(), srv.URL, srv.URL, 100)
	p, ok, err := c.Price(context.Background(), "up1", "buy")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 0.62, p, 1e-9)
}

func TestREST_PriceNull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"price":null}`))
	}))
	defer srv.Close()

	c := New(logger.NewDev(), srv.URL, srv.URL, 100)
	_, ok, err := c.Price(context.Background(), "up1", "buy")
	require.NoError(t, err)
	assert.False(t, ok)
}
