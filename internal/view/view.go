// Package view derives the presented slice of the blog list from the
// canonical list and the current query. Derivation is pure: the same list
// and query always yield the same view, and the input list is never
// modified.
package view

import (
	"strings"

	"blogdesk/internal/common/pagination"
	"blogdesk/internal/domain/entity"
)

// Query captures the user-controlled view parameters.
type Query struct {
	// Search filters by case-insensitive substring against author name,
	// category and sub-category. Blank matches everything.
	Search string

	// Page is the requested 1-based page, clamped to the available range.
	Page int

	// PageSize is the number of blogs per page. Values below 1 fall back
	// to the pagination default.
	PageSize int
}

// View is one derived page of the filtered list.
type View struct {
	// Blogs is the page slice in canonical order.
	Blogs []entity.Blog

	// Meta describes the position of the page within the filtered list.
	// Meta.Page is the clamped page actually shown, which may differ from
	// the requested one.
	Meta pagination.Metadata
}

// Derive computes the view for the given list and query. Filtering preserves
// the canonical order; the requested page is clamped to [1, totalPages], so
// a page left dangling by a deletion or a narrower filter lands on the last
// page instead of an empty one.
func Derive(list []entity.Blog, q Query) View {
	size := q.PageSize
	if size < 1 {
		size = pagination.DefaultConfig().PageSize
	}

	filtered := filter(list, q.Search)
	totalPages := pagination.CalculateTotalPages(int64(len(filtered)), size)
	page := pagination.Clamp(q.Page, totalPages)
	start, end := pagination.PageBounds(page, size, len(filtered))

	return View{
		Blogs: filtered[start:end],
		Meta: pagination.Metadata{
			Total:      int64(len(filtered)),
			Page:       page,
			Size:       size,
			TotalPages: totalPages,
		},
	}
}

// filter returns the blogs matching the search term, in input order.
func filter(list []entity.Blog, search string) []entity.Blog {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return list
	}

	matched := make([]entity.Blog, 0, len(list))
	for _, b := range list {
		if matches(b, term) {
			matched = append(matched, b)
		}
	}
	return matched
}

func matches(b entity.Blog, term string) bool {
	return strings.Contains(strings.ToLower(b.AuthorName), term) ||
		strings.Contains(strings.ToLower(b.Category), term) ||
		strings.Contains(strings.ToLower(b.SubCategory), term)
}
