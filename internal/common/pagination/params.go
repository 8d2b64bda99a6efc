package pagination

import "fmt"

// Params represents pagination parameters for a list view.
type Params struct {
	Page int // 1-based page number
	Size int // Items per page
}

// Validate validates pagination parameters against the configuration.
// Returns an error if:
//   - page is less than 1
//   - size is less than 1 or greater than config.MaxPageSize
func (p Params) Validate(config Config) error {
	if p.Page < 1 {
		return fmt.Errorf("page must be a positive integer")
	}
	if p.Size < 1 || p.Size > config.MaxPageSize {
		return fmt.Errorf("page size must be between 1 and %d", config.MaxPageSize)
	}
	return nil
}

// WithDefaults applies default values from config to Params.
// This is useful for ensuring params have valid values.
//
// Rules:
//   - If page <= 0, set to config.DefaultPage
//   - If size <= 0, set to config.PageSize
//   - If size > config.MaxPageSize, cap to config.MaxPageSize
func (p Params) WithDefaults(config Config) Params {
	if p.Page <= 0 {
		p.Page = config.DefaultPage
	}
	if p.Size <= 0 {
		p.Size = config.PageSize
	}
	if p.Size > config.MaxPageSize {
		p.Size = config.MaxPageSize
	}
	return p
}
