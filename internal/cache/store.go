// Package cache maintains the in-memory copy of the canonical blog list.
// The list is fetched once on first use, replaced wholesale on every
// successful fetch, and refreshed explicitly through Invalidate (or on a
// schedule through Refresher). The store never merges partial results.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"blogdesk/internal/domain/entity"
	"blogdesk/internal/observability/metrics"
	"blogdesk/internal/resilience/retry"
)

// Status describes the lifecycle state of the cached list.
type Status string

const (
	// StatusLoading means no fetch has settled yet.
	StatusLoading Status = "loading"

	// StatusReady means the last fetch succeeded and Blogs is current.
	StatusReady Status = "ready"

	// StatusError means the last fetch failed after exhausting retries.
	StatusError Status = "error"
)

// flightKey is the singleflight key for the list fetch; there is only one
// cached query.
const flightKey = "blogs"

// Lister fetches the canonical blog list. *client.Client satisfies it.
type Lister interface {
	List(ctx context.Context) ([]entity.Blog, error)
}

// Snapshot is an immutable view of the cache at one point in time.
//
// During a refresh the previous Blogs remain visible, so readers always see
// the last settled list. Callers must not mutate Blogs.
type Snapshot struct {
	Status    Status
	Blogs     []entity.Blog
	Err       error
	FetchedAt time.Time
}

// Store is the query cache over the blog list. It is safe for concurrent
// use: concurrent initial loads join a single fetch, and at most one fetch
// is in flight at any time.
type Store struct {
	lister   Lister
	logger   *slog.Logger
	retryCfg retry.Config

	group singleflight.Group

	mu       sync.Mutex
	snap     Snapshot
	fetching bool
	pending  bool
}

// New creates a Store around the given lister. The store starts in
// StatusLoading with no data.
func New(lister Lister, logger *slog.Logger) *Store {
	return &Store{
		lister:   lister,
		logger:   logger,
		retryCfg: retry.ListFetchConfig(),
		snap:     Snapshot{Status: StatusLoading},
	}
}

// Snapshot returns the current cache state without triggering a fetch.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Load returns the cached list, fetching it first if no fetch has succeeded
// yet. Concurrent callers during the initial load share one fetch. A settled
// error state is sticky: Load does not retry it, Invalidate does.
func (s *Store) Load(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if s.snap.Status != StatusLoading {
		snap := s.snap
		s.mu.Unlock()
		return snap, snap.Err
	}
	s.mu.Unlock()

	err := s.fetch(ctx)
	return s.Snapshot(), err
}

// Invalidate marks the list stale and refetches it.
//
// Invalidations collapse: if a fetch is already in flight the call returns
// immediately and a single re-run happens after the current fetch settles,
// no matter how many invalidations arrived in the meantime.
func (s *Store) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	if s.fetching {
		s.pending = true
		s.mu.Unlock()
		metrics.RecordCacheInvalidation(true)
		s.logger.Debug("invalidation collapsed into in-flight fetch")
		return nil
	}
	s.mu.Unlock()

	metrics.RecordCacheInvalidation(false)
	return s.fetch(ctx)
}

// fetch runs one refresh flight, joining any flight already in progress,
// then drains at most one deferred re-run left behind by invalidations that
// arrived while the flight was running.
func (s *Store) fetch(ctx context.Context) error {
	_, err, _ := s.group.Do(flightKey, func() (interface{}, error) {
		s.mu.Lock()
		s.fetching = true
		s.mu.Unlock()

		refreshErr := s.refresh(ctx)

		s.mu.Lock()
		s.fetching = false
		s.mu.Unlock()
		return nil, refreshErr
	})

	s.mu.Lock()
	rerun := s.pending
	s.pending = false
	s.mu.Unlock()

	if rerun {
		s.logger.Debug("running deferred refresh")
		return s.fetch(ctx)
	}
	return err
}

// refresh performs the actual list fetch with backoff and replaces the
// cached list wholesale on success.
func (s *Store) refresh(ctx context.Context) error {
	var blogs []entity.Blog
	err := retry.WithBackoff(ctx, s.retryCfg, func() error {
		var listErr error
		blogs, listErr = s.lister.List(ctx)
		return listErr
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snap.Status = StatusError
		s.snap.Err = err
		metrics.RecordCacheFetch(false, 0)
		s.logger.Error("blog list fetch failed", slog.Any("error", err))
		return err
	}

	s.snap = Snapshot{
		Status:    StatusReady,
		Blogs:     blogs,
		FetchedAt: time.Now(),
	}
	metrics.RecordCacheFetch(true, len(blogs))
	s.logger.Info("blog list refreshed", slog.Int("count", len(blogs)))
	return nil
}
