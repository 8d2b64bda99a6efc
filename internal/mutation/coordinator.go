package mutation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"blogdesk/internal/client"
	"blogdesk/internal/domain/entity"
	"blogdesk/internal/notify"
	"blogdesk/internal/observability/logging"
	"blogdesk/internal/observability/metrics"
)

// API is the slice of the blog client the coordinator drives.
// *client.Client satisfies it.
type API interface {
	Create(ctx context.Context, p *client.Payload) (entity.Blog, error)
	Update(ctx context.Context, id string, p *client.Payload) (entity.Blog, error)
	Delete(ctx context.Context, id string) error
}

// Invalidator refreshes the cached blog list after a successful mutation.
// *cache.Store satisfies it.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Coordinator serializes mutations per kind and runs each one through the
// pending -> success|error lifecycle. It is safe for concurrent use.
type Coordinator struct {
	api    API
	cache  Invalidator
	events *notify.Fanout
	logger *slog.Logger

	mu       sync.Mutex
	inFlight map[Kind]bool
}

// New creates a Coordinator.
func New(api API, cache Invalidator, events *notify.Fanout, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		api:      api,
		cache:    cache,
		events:   events,
		logger:   logger,
		inFlight: make(map[Kind]bool),
	}
}

// Create submits a new blog. On success the cache is invalidated; on error
// the caller's draft is untouched and may be resubmitted as-is.
func (c *Coordinator) Create(ctx context.Context, p *client.Payload) (entity.Blog, error) {
	var created entity.Blog
	err := c.run(ctx, KindCreate, "creating blog", "blog created", func(ctx context.Context) error {
		var opErr error
		created, opErr = c.api.Create(ctx, p)
		return opErr
	})
	if err != nil {
		return entity.Blog{}, err
	}
	return created, nil
}

// Update submits the full payload for an existing blog.
func (c *Coordinator) Update(ctx context.Context, id string, p *client.Payload) (entity.Blog, error) {
	var updated entity.Blog
	err := c.run(ctx, KindUpdate, "updating blog", "blog updated", func(ctx context.Context) error {
		var opErr error
		updated, opErr = c.api.Update(ctx, id, p)
		return opErr
	})
	if err != nil {
		return entity.Blog{}, err
	}
	return updated, nil
}

// Delete removes a blog after the confirmer approves. A declined
// confirmation is a complete no-op: nothing is sent, no events are emitted,
// and ErrConfirmationDeclined is returned.
func (c *Coordinator) Delete(ctx context.Context, id string, confirmer Confirmer) error {
	if confirmer == nil {
		return fmt.Errorf("delete requires a confirmer")
	}
	ok, err := confirmer.Confirm(ctx, id)
	if err != nil {
		return fmt.Errorf("delete confirmation: %w", err)
	}
	if !ok {
		return ErrConfirmationDeclined
	}

	return c.run(ctx, KindDelete, "deleting blog", "blog deleted", func(ctx context.Context) error {
		return c.api.Delete(ctx, id)
	})
}

// run executes one mutation under the per-kind in-flight guard and emits
// the lifecycle events around it.
func (c *Coordinator) run(ctx context.Context, kind Kind, pendingMsg, successMsg string, op func(ctx context.Context) error) error {
	if err := c.acquire(kind); err != nil {
		return err
	}
	defer c.release(kind)

	invocationID := uuid.New().String()
	logger := logging.WithInvocation(c.logger, invocationID)
	logger.Info("mutation started", slog.String("kind", string(kind)))

	c.events.Publish(ctx, notify.Event{
		InvocationID: invocationID,
		Kind:         string(kind),
		Phase:        notify.PhasePending,
		Message:      pendingMsg,
	})

	start := time.Now()
	err := op(ctx)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordMutation(string(kind), string(notify.PhaseError), duration)
		logger.Error("mutation failed",
			slog.String("kind", string(kind)),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		c.events.Publish(ctx, notify.Event{
			InvocationID: invocationID,
			Kind:         string(kind),
			Phase:        notify.PhaseError,
			Message:      failureMessage(err),
			Err:          err,
		})
		return err
	}

	metrics.RecordMutation(string(kind), string(notify.PhaseSuccess), duration)
	logger.Info("mutation completed",
		slog.String("kind", string(kind)),
		slog.Duration("duration", duration))
	c.events.Publish(ctx, notify.Event{
		InvocationID: invocationID,
		Kind:         string(kind),
		Phase:        notify.PhaseSuccess,
		Message:      successMsg,
	})

	// The canonical list changed on the server; refresh failures surface
	// through the cache state, not through the settled mutation.
	if invErr := c.cache.Invalidate(ctx); invErr != nil {
		logger.Warn("post-mutation cache refresh failed", slog.Any("error", invErr))
	}
	return nil
}

func (c *Coordinator) acquire(kind Kind) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[kind] {
		return ErrMutationInFlight
	}
	c.inFlight[kind] = true
	return nil
}

func (c *Coordinator) release(kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight[kind] = false
}

// failureMessage prefers the transport-level message when the failure came
// from the API, falling back to the raw error text.
func failureMessage(err error) string {
	if te := client.AsTransportError(err); te != nil {
		return te.Message
	}
	return err.Error()
}
