package notify

import (
	"context"
	"log/slog"
)

// Fanout dispatches events to every enabled channel. Delivery failures are
// logged and never propagated: a broken notification channel must not fail
// the mutation that produced the event.
type Fanout struct {
	channels []Channel
	logger   *slog.Logger
}

// NewFanout creates a Fanout over the given channels.
func NewFanout(channels []Channel, logger *slog.Logger) *Fanout {
	return &Fanout{channels: channels, logger: logger}
}

// Publish delivers the event to all enabled channels in registration order.
func (f *Fanout) Publish(ctx context.Context, event Event) {
	for _, ch := range f.channels {
		if !ch.IsEnabled() {
			continue
		}
		if err := ch.Notify(ctx, event); err != nil {
			f.logger.Warn("notification delivery failed",
				slog.String("channel", ch.Name()),
				slog.String("invocation_id", event.InvocationID),
				slog.String("phase", string(event.Phase)),
				slog.Any("error", err))
		}
	}
}
