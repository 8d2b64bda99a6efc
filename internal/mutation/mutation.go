// Package mutation coordinates blog write operations. Every mutation runs
// through a pending -> success|error lifecycle, emits events to notification
// channels at each transition, and invalidates the cache only after success.
// Mutations are never retried automatically.
package mutation

import (
	"context"
	"errors"
)

// Kind identifies a mutation kind. At most one mutation of each kind is in
// flight at a time.
type Kind string

const (
	KindCreate Kind = "create"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

var (
	// ErrMutationInFlight is returned when a mutation of the same kind is
	// already pending.
	ErrMutationInFlight = errors.New("mutation of this kind already in flight")

	// ErrConfirmationDeclined is returned when the delete confirmation was
	// declined. Nothing was sent and no events were emitted.
	ErrConfirmationDeclined = errors.New("delete confirmation declined")
)

// Confirmer answers the destructive-action prompt before a delete is sent.
type Confirmer interface {
	// Confirm reports whether the delete of the given blog may proceed.
	// A non-nil error aborts the delete the same way a decline does.
	Confirm(ctx context.Context, blogID string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, blogID string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(ctx context.Context, blogID string) (bool, error) {
	return f(ctx, blogID)
}

// AlwaysConfirm returns a Confirmer that approves every delete, for
// non-interactive use.
func AlwaysConfirm() Confirmer {
	return ConfirmerFunc(func(context.Context, string) (bool, error) {
		return true, nil
	})
}
