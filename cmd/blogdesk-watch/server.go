package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogdesk/internal/cache"
)

// monitorServer exposes the daemon's observability endpoints:
//   - GET /metrics: Prometheus metrics
//   - GET /healthz: liveness probe (always 200 once serving)
//   - GET /healthz/ready: readiness probe (200 after startup, includes
//     the current cache status)
type monitorServer struct {
	store  *cache.Store
	logger *slog.Logger
	ready  atomic.Bool
	server *http.Server
}

// readyResponse is the JSON body of the readiness probe.
type readyResponse struct {
	Status     string `json:"status"`
	CacheState string `json:"cache_state"`
	Blogs      int    `json:"blogs"`
}

func newMonitorServer(addr string, store *cache.Store, logger *slog.Logger) *monitorServer {
	m := &monitorServer{store: store, logger: logger}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", m.handleLiveness)
	mux.HandleFunc("/healthz/ready", m.handleReadiness)

	m.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return m
}

// Start serves until Shutdown is called. http.ErrServerClosed is not
// reported as a failure.
func (m *monitorServer) Start() error {
	m.logger.Info("monitor server listening", slog.String("addr", m.server.Addr))
	if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// SetReady flips the readiness probe.
func (m *monitorServer) SetReady(ready bool) {
	m.ready.Store(ready)
}

// Shutdown stops the server, letting in-flight requests finish.
func (m *monitorServer) Shutdown(ctx context.Context) error {
	return m.server.Shutdown(ctx)
}

func (m *monitorServer) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (m *monitorServer) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	snap := m.store.Snapshot()
	resp := readyResponse{
		Status:     "ready",
		CacheState: string(snap.Status),
		Blogs:      len(snap.Blogs),
	}

	w.Header().Set("Content-Type", "application/json")
	if !m.ready.Load() {
		resp.Status = "starting"
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
