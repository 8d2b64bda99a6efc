package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher invalidates a Store on a cron schedule. It is the scheduled
// counterpart of a manual Invalidate call and shares the same collapse
// semantics, so an overlapping tick never starts a parallel fetch.
type Refresher struct {
	store    *Store
	logger   *slog.Logger
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
}

// NewRefresher creates a Refresher for the given store.
//
// Parameters:
//   - store: the cache to invalidate
//   - schedule: a cron expression, e.g. "*/5 * * * *"
//   - timeout: per-refresh timeout
//   - logger: structured logger
func NewRefresher(store *Store, schedule string, timeout time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		store:    store,
		logger:   logger,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(),
	}
}

// Start registers the refresh job and starts the scheduler.
func (r *Refresher) Start() error {
	if _, err := r.cron.AddFunc(r.schedule, r.run); err != nil {
		return fmt.Errorf("add refresh job: %w", err)
	}
	r.cron.Start()
	r.logger.Info("cache refresher started", slog.String("schedule", r.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("cache refresher stopped")
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	if err := r.store.Invalidate(ctx); err != nil {
		r.logger.Error("scheduled refresh failed",
			slog.Any("error", err),
			slog.Duration("duration", time.Since(start)))
		return
	}
	r.logger.Info("scheduled refresh completed",
		slog.Duration("duration", time.Since(start)))
}
