// Package metrics declares the orchestrator's Prometheus instrumentation:
// tick latency, the consecutive-hard-error counter and open-position count.
// This is observability, not the dashboard -- it survives even with the
// dashboard disabled, exposed on its own /metrics handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TickLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "polymarket_btc15_tick_latency_seconds",
		Help:    "Wall-clock duration of one orchestrator tick.",
		Buckets: prometheus.DefBuckets,
	}, []string{"cadence"})

	ConsecutiveErrors = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "polymarket_btc15_consecutive_hard_errors",
		Help: "Current consecutive-hard-error count since the last successful tick.",
	})

	OpenPositions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "polymarket_btc15_open_positions",
		Help: "Number of currently open paper positions.",
	})
)

func init() {
	prometheus.MustRegister(TickLatency, ConsecutiveErrors, OpenPositions)
}

// Handler exposes the default registry for a plain net/http mux.
func Handler() http.Handler {
	return promhttp.Handler()
}
