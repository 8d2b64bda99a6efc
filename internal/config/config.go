// Package config loads application configuration from environment variables.
// Every field has a default so the binaries run with no configuration at all
// against a local API.
package config

import (
	"fmt"
	"time"

	"blogdesk/internal/common/pagination"
	pkgcfg "blogdesk/pkg/config"
)

// Config is the full application configuration.
type Config struct {
	API        APIConfig
	Refresh    RefreshConfig
	Metrics    MetricsConfig
	Pagination pagination.Config
}

// APIConfig configures the blog API client.
type APIConfig struct {
	// BaseURL is the blog API base path.
	// Default: "http://localhost:5000/api/blogs"
	BaseURL string

	// Timeout is the per-request timeout.
	// Default: 30s
	Timeout time.Duration

	// RequestsPerSecond is the sustained request rate toward the API.
	// Default: 5
	RequestsPerSecond int

	// Burst is the token bucket burst capacity.
	// Default: 10
	Burst int
}

// RefreshConfig configures the scheduled cache refresh in blogdesk-watch.
type RefreshConfig struct {
	// CronSchedule is the refresh schedule in cron syntax.
	// Default: "*/5 * * * *" (every five minutes)
	CronSchedule string

	// Timeout bounds a single scheduled refresh.
	// Default: 60s
	Timeout time.Duration
}

// MetricsConfig configures the metrics/health HTTP listener of
// blogdesk-watch.
type MetricsConfig struct {
	// Addr is the listen address for /metrics and /healthz.
	// Default: ":9090"
	Addr string
}

// Load reads the configuration from the environment, applying defaults for
// everything unset.
//
// Environment variables:
//   - BLOG_API_URL: Blog API base URL
//   - BLOG_API_TIMEOUT: Per-request timeout
//   - BLOG_API_RATE: Sustained requests per second
//   - BLOG_API_BURST: Token bucket burst
//   - REFRESH_CRON: Cache refresh cron schedule
//   - REFRESH_TIMEOUT: Per-refresh timeout
//   - METRICS_ADDR: Metrics listen address
//   - PAGINATION_*: see pagination.LoadFromEnv
func Load() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           pkgcfg.GetEnvString("BLOG_API_URL", "http://localhost:5000/api/blogs"),
			Timeout:           pkgcfg.GetEnvDuration("BLOG_API_TIMEOUT", 30*time.Second),
			RequestsPerSecond: pkgcfg.GetEnvInt("BLOG_API_RATE", 5),
			Burst:             pkgcfg.GetEnvInt("BLOG_API_BURST", 10),
		},
		Refresh: RefreshConfig{
			CronSchedule: pkgcfg.GetEnvString("REFRESH_CRON", "*/5 * * * *"),
			Timeout:      pkgcfg.GetEnvDuration("REFRESH_TIMEOUT", 60*time.Second),
		},
		Metrics: MetricsConfig{
			Addr: pkgcfg.GetEnvString("METRICS_ADDR", ":9090"),
		},
		Pagination: pagination.LoadFromEnv(),
	}
}

// Validate checks the loaded configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("blog API base URL must not be empty")
	}
	if err := pkgcfg.ValidatePositiveDuration(c.API.Timeout); err != nil {
		return fmt.Errorf("BLOG_API_TIMEOUT: %w", err)
	}
	if c.API.RequestsPerSecond < 1 {
		return fmt.Errorf("BLOG_API_RATE must be at least 1, got %d", c.API.RequestsPerSecond)
	}
	if err := pkgcfg.ValidateCronSchedule(c.Refresh.CronSchedule); err != nil {
		return fmt.Errorf("REFRESH_CRON: %w", err)
	}
	if err := pkgcfg.ValidatePositiveDuration(c.Refresh.Timeout); err != nil {
		return fmt.Errorf("REFRESH_TIMEOUT: %w", err)
	}
	return nil
}
