package notify

import (
	"context"
	"log/slog"
)

// LogChannel emits events as structured log records. It is always available
// as the durable counterpart of the transient console output.
type LogChannel struct {
	logger  *slog.Logger
	enabled bool
}

// NewLogChannel creates a log channel emitting through the given logger.
func NewLogChannel(logger *slog.Logger, enabled bool) *LogChannel {
	return &LogChannel{logger: logger, enabled: enabled}
}

// Name returns the channel identifier "log".
func (c *LogChannel) Name() string {
	return "log"
}

// IsEnabled reports whether the channel is enabled.
func (c *LogChannel) IsEnabled() bool {
	return c.enabled
}

// Notify emits one log record for the event. Error-phase events log at
// error level, everything else at info.
func (c *LogChannel) Notify(_ context.Context, event Event) error {
	attrs := []any{
		slog.String("invocation_id", event.InvocationID),
		slog.String("kind", event.Kind),
		slog.String("phase", string(event.Phase)),
	}
	if event.Err != nil {
		attrs = append(attrs, slog.Any("error", event.Err))
		c.logger.Error(event.Message, attrs...)
		return nil
	}
	c.logger.Info(event.Message, attrs...)
	return nil
}
