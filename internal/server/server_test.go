package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvh2/polymarket-btc15/internal/dashboard"
	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
)

func TestHealthz(t *testing.T) {
	hub := dashboard.New(logger.NewDev())
	s := New(logger.NewDev(), ":0", hub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	s.http.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetricsEndpointRegistered(t *testing.T) {
	hub := dashboard.New(logger.NewDev())
	s := New(logger.NewDev(), ":0", hub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	s.http.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
