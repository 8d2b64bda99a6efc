// Package main provides blogdesk-watch, a daemon that keeps the blog cache
// fresh on a cron schedule and exposes Prometheus metrics and health
// endpoints.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"blogdesk/internal/cache"
	"blogdesk/internal/client"
	"blogdesk/internal/config"
	"blogdesk/internal/observability/logging"
)

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.String("api_url", cfg.API.BaseURL),
		slog.String("refresh_cron", cfg.Refresh.CronSchedule),
		slog.String("metrics_addr", cfg.Metrics.Addr))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	apiClient := client.New(client.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout,
		UserAgent:         "blogdesk-watch/1.0",
		RequestsPerSecond: float64(cfg.API.RequestsPerSecond),
		Burst:             cfg.API.Burst,
	})
	store := cache.New(apiClient, logger)

	server := newMonitorServer(cfg.Metrics.Addr, store, logger)
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("monitor server failed", slog.Any("error", err))
		}
	}()

	// Warm the cache before the schedule takes over; a failed warm-up is
	// not fatal, the next tick retries it via Invalidate.
	warmCtx, cancel := context.WithTimeout(ctx, cfg.Refresh.Timeout)
	if _, err := store.Load(warmCtx); err != nil {
		logger.Warn("initial cache load failed", slog.Any("error", err))
	}
	cancel()

	refresher := cache.NewRefresher(store, cfg.Refresh.CronSchedule, cfg.Refresh.Timeout, logger)
	if err := refresher.Start(); err != nil {
		logger.Error("failed to start refresher", slog.Any("error", err))
		os.Exit(1)
	}
	server.SetReady(true)
	logger.Info("blogdesk-watch started")

	<-ctx.Done()
	logger.Info("shutting down")

	refresher.Stop()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("monitor server shutdown failed", slog.Any("error", err))
	}
	logger.Info("stopped")
}
