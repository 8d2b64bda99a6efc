// Package notify delivers mutation lifecycle events to user-facing channels.
// Channels are presentation only: they can fail without affecting the
// mutation that produced the event.
package notify

import (
	"context"
)

// Phase is the lifecycle phase an event reports.
type Phase string

const (
	// PhasePending is emitted when a mutation starts.
	PhasePending Phase = "pending"

	// PhaseSuccess is emitted when a mutation settles successfully.
	PhaseSuccess Phase = "success"

	// PhaseError is emitted when a mutation settles with a failure.
	PhaseError Phase = "error"
)

// Event describes one lifecycle transition of a mutation.
type Event struct {
	// InvocationID identifies the mutation invocation the event belongs to.
	InvocationID string

	// Kind is the mutation kind: "create", "update" or "delete".
	Kind string

	// Phase is the reported lifecycle phase.
	Phase Phase

	// Message is the human-readable text for display.
	Message string

	// Err carries the failure cause for PhaseError events.
	Err error
}

// Channel delivers events to one destination.
//
// Implementations must be safe for concurrent use. A Notify error means the
// delivery failed; it never means the underlying mutation failed.
type Channel interface {
	// Name returns the channel identifier for logging.
	Name() string

	// IsEnabled reports whether the channel should receive events.
	// Disabled channels are skipped during dispatch.
	IsEnabled() bool

	// Notify delivers one event.
	Notify(ctx context.Context, event Event) error
}
