package pagination

// Metadata contains pagination metadata for a derived view.
type Metadata struct {
	Total      int64 `json:"total"`       // Total number of items after filtering
	Page       int   `json:"page"`        // Current page number (1-based, clamped)
	Size       int   `json:"size"`        // Items per page
	TotalPages int   `json:"total_pages"` // Calculated total number of pages
}
