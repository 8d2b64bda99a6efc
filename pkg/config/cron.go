package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// ValidateCronSchedule validates a cron expression using the robfig/cron/v3
// parser, the same parser the scheduler runs it through later.
//
// The expression must follow the standard five-field cron format:
//   - "minute hour day month weekday"
//   - Example: "*/5 * * * *" (every five minutes)
//   - Example: "30 5 * * 1-5" (weekdays at 5:30)
//
// Returns:
//   - error: nil if valid, descriptive error otherwise
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("invalid cron schedule: cannot be empty")
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}
	return nil
}
