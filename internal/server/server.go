// Package server exposes the orchestrator's outward-facing HTTP surface:
// the dashboard WebSocket, Prometheus metrics and a liveness probe. No
// gRPC/gateway plane is wired here -- the spec has no gRPC service, so the
// teacher's cmux-multiplexed gRPC+HTTP server has no SPEC_FULL.md home (see
// DESIGN.md); this is a plain net/http mux instead.
package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/anvh2/polymarket-btc15/internal/dashboard"
	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
	"github.com/anvh2/polymarket-btc15/internal/metrics"
)

type Server struct {
	log  *logger.Logger
	http *http.Server
}

func New(log *logger.Logger, addr string, hub *dashboard.Hub) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return &Server{
		log:  log,
		http: &http.Server{Addr: addr, Handler: mux},
	}
}

func (s *Server) Start() error {
	s.log.Info("http server listening", zap.String("addr", s.http.Addr))
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
