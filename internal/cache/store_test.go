package cache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"blogdesk/internal/domain/entity"
	"blogdesk/internal/resilience/retry"
)

// fakeLister is a scriptable Lister that counts calls and can block until
// released, so tests can hold a fetch in flight.
type fakeLister struct {
	mu      sync.Mutex
	calls   int
	results []listResult

	// blockOn, when non-nil, is received from before each call returns.
	blockOn chan struct{}
}

type listResult struct {
	blogs []entity.Blog
	err   error
}

func (f *fakeLister) List(ctx context.Context) ([]entity.Blog, error) {
	f.mu.Lock()
	idx := f.calls
	f.calls++
	block := f.blockOn
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	r := f.results[idx]
	return r.blogs, r.err
}

func (f *fakeLister) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fastRetry keeps test runs short while preserving the 3-attempt policy.
func fastRetry() retry.Config {
	cfg := retry.ListFetchConfig()
	cfg.InitialDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	return cfg
}

func blogs(ids ...string) []entity.Blog {
	out := make([]entity.Blog, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.Blog{ID: id, Title: "post " + id})
	}
	return out
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{results: []listResult{{blogs: blogs("a", "b")}}}
	store := New(lister, discardLogger())

	if got := store.Snapshot().Status; got != StatusLoading {
		t.Fatalf("initial status = %s, want %s", got, StatusLoading)
	}

	snap, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Status != StatusReady {
		t.Errorf("status = %s, want %s", snap.Status, StatusReady)
	}
	if len(snap.Blogs) != 2 || snap.Blogs[0].ID != "a" {
		t.Errorf("unexpected blogs: %+v", snap.Blogs)
	}

	// A second Load serves the cached list without refetching.
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if got := lister.callCount(); got != 1 {
		t.Errorf("list calls = %d, want 1", got)
	}
}

func TestStore_Load_RetriesThreeTimes(t *testing.T) {
	t.Parallel()

	serverErr := &retry.HTTPError{StatusCode: 500, Message: "boom"}
	lister := &fakeLister{results: []listResult{{err: serverErr}}}
	store := New(lister, discardLogger())
	store.retryCfg = fastRetry()

	snap, err := store.Load(context.Background())
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if got := lister.callCount(); got != 3 {
		t.Errorf("list calls = %d, want 3 (initial + 2 retries)", got)
	}
	if snap.Status != StatusError {
		t.Errorf("status = %s, want %s", snap.Status, StatusError)
	}
	if snap.Err == nil || !errors.Is(snap.Err, serverErr) {
		t.Errorf("snapshot error %v does not wrap the server error", snap.Err)
	}
}

func TestStore_Load_NonRetryableErrorFailsFast(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{results: []listResult{{err: errors.New("bad payload")}}}
	store := New(lister, discardLogger())
	store.retryCfg = fastRetry()

	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if got := lister.callCount(); got != 1 {
		t.Errorf("list calls = %d, want 1 for a non-retryable error", got)
	}
}

func TestStore_Load_ErrorIsSticky(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{results: []listResult{
		{err: errors.New("down")},
		{blogs: blogs("a")},
	}}
	store := New(lister, discardLogger())
	store.retryCfg = fastRetry()

	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("first Load() error = nil, want error")
	}
	calls := lister.callCount()

	// Load does not retry a settled error state.
	snap, err := store.Load(context.Background())
	if err == nil {
		t.Fatal("second Load() error = nil, want sticky error")
	}
	if snap.Status != StatusError {
		t.Errorf("status = %s, want %s", snap.Status, StatusError)
	}
	if got := lister.callCount(); got != calls {
		t.Errorf("list calls = %d, want %d (no refetch)", got, calls)
	}

	// Invalidate does.
	if err := store.Invalidate(context.Background()); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	snap = store.Snapshot()
	if snap.Status != StatusReady || len(snap.Blogs) != 1 {
		t.Errorf("after invalidate: status=%s blogs=%d, want ready/1", snap.Status, len(snap.Blogs))
	}
	if snap.Err != nil {
		t.Errorf("snapshot error = %v, want nil after successful refresh", snap.Err)
	}
}

func TestStore_Invalidate_ReplacesWholesale(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{results: []listResult{
		{blogs: blogs("a", "b", "c")},
		{blogs: blogs("d")},
	}}
	store := New(lister, discardLogger())

	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := store.Invalidate(context.Background()); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}

	snap := store.Snapshot()
	if len(snap.Blogs) != 1 || snap.Blogs[0].ID != "d" {
		t.Errorf("blogs after invalidate = %+v, want wholesale replacement with [d]", snap.Blogs)
	}
}

func TestStore_ConcurrentLoadsJoinOneFetch(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	lister := &fakeLister{
		results: []listResult{{blogs: blogs("a")}},
		blockOn: release,
	}
	store := New(lister, discardLogger())

	const n = 8
	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Load(context.Background()); err != nil {
				failures.Add(1)
			}
		}()
	}

	// Let the goroutines pile up on the flight, then release one call.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := failures.Load(); got != 0 {
		t.Errorf("%d loads failed", got)
	}
	if got := lister.callCount(); got != 1 {
		t.Errorf("list calls = %d, want 1 shared fetch", got)
	}
}

func TestStore_InvalidationsCollapse(t *testing.T) {
	t.Parallel()

	release := make(chan struct{}, 1)
	lister := &fakeLister{
		results: []listResult{{blogs: blogs("a")}},
		blockOn: release,
	}
	store := New(lister, discardLogger())

	// Hold the first fetch in flight.
	done := make(chan error, 1)
	go func() {
		_, err := store.Load(context.Background())
		done <- err
	}()
	waitFor(t, func() bool { return lister.callCount() == 1 })

	// Invalidations arriving mid-fetch collapse into a single deferred re-run.
	const n = 5
	for i := 0; i < n; i++ {
		if err := store.Invalidate(context.Background()); err != nil {
			t.Fatalf("Invalidate() error = %v", err)
		}
	}

	release <- struct{}{} // settle the initial fetch
	release <- struct{}{} // settle the deferred re-run
	if err := <-done; err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	waitFor(t, func() bool { return store.Snapshot().Status == StatusReady })
	if got := lister.callCount(); got != 2 {
		t.Errorf("list calls = %d, want 2 (initial fetch + one deferred re-run)", got)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}
