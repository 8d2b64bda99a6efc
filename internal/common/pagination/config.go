// Package pagination provides reusable pagination arithmetic for slicing an
// in-memory list into fixed-size pages, with support for clamping out-of-range
// page numbers after the underlying list shrinks.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or config files.
type Config struct {
	DefaultPage int // Default page number (typically 1)
	PageSize    int // Items per page
	MaxPageSize int // Maximum allowed items per page
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, size=6, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage: 1,
		PageSize:    6,
		MaxPageSize: 100,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page number
//   - PAGINATION_PAGE_SIZE: Items per page
//   - PAGINATION_MAX_PAGE_SIZE: Maximum items per page
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultPage: getEnvAsInt("PAGINATION_DEFAULT_PAGE", 1),
		PageSize:    getEnvAsInt("PAGINATION_PAGE_SIZE", 6),
		MaxPageSize: getEnvAsInt("PAGINATION_MAX_PAGE_SIZE", 100),
	}
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
