package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerExposesRegisteredGauges(t *testing.T) {
	ConsecutiveErrors.Set(3)
	OpenPositions.Set(2)
	TickLatency.WithLabelValues("slow").Observe(0.05)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	Handler().ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "polymarket_btc15_consecutive_hard_errors 3")
	assert.Contains(t, body, "polymarket_btc15_open_positions 2")
	assert.Contains(t, body, "polymarket_btc15_tick_latency_seconds")
}
