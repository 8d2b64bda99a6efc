// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Blog and Attachment, along with
// their invariants and domain-specific errors.
package entity

import "time"

// DateLayout is the wire format for publishing dates (date-only precision).
const DateLayout = "2006-01-02"

// Blog represents a blog post entity.
// A Blog is either persisted (server-assigned ID and CreatedAt) or a draft (empty ID).
// The ID is opaque and immutable once assigned; clients never modify it.
type Blog struct {
	ID             string    `json:"_id,omitempty"`
	AuthorName     string    `json:"authorName"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	SubCategory    string    `json:"subCategory,omitempty"`
	Summary        string    `json:"summary"`
	Content        string    `json:"content"`
	TravelTags     []string  `json:"travelTags"`
	PublishingDate string    `json:"publishingDate"` // ISO date, date-only precision
	AuthorImage    string    `json:"authorImage"`    // URL of the persisted author image
	Media          []string  `json:"media"`          // URLs of persisted media files
	CreatedAt      time.Time `json:"createdAt,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// IsPersisted reports whether the blog has been assigned a server-side identity.
func (b *Blog) IsPersisted() bool {
	return b.ID != ""
}

// Today returns the current date in the publishing-date wire format.
// New drafts default their publishing date to this value.
func Today() string {
	return time.Now().Format(DateLayout)
}
