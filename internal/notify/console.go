package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// phaseMarkers are the per-phase prefixes rendered before the message.
var phaseMarkers = map[Phase]string{
	PhasePending: "...",
	PhaseSuccess: "ok ",
	PhaseError:   "err",
}

// ConsoleChannel renders events as single progress lines on a writer,
// the terminal counterpart of transient toast notifications.
type ConsoleChannel struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
}

// NewConsoleChannel creates a console channel writing to w.
func NewConsoleChannel(w io.Writer, enabled bool) *ConsoleChannel {
	return &ConsoleChannel{w: w, enabled: enabled}
}

// Name returns the channel identifier "console".
func (c *ConsoleChannel) Name() string {
	return "console"
}

// IsEnabled reports whether console output is enabled.
func (c *ConsoleChannel) IsEnabled() bool {
	return c.enabled
}

// Notify writes one progress line. Lines are serialized so concurrent
// events never interleave mid-line.
func (c *ConsoleChannel) Notify(_ context.Context, event Event) error {
	marker, ok := phaseMarkers[event.Phase]
	if !ok {
		marker = "   "
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.w, "[%s] %s\n", marker, event.Message); err != nil {
		return fmt.Errorf("write console notification: %w", err)
	}
	return nil
}
