// Package fixtures provides deterministic test data generators shared by
// package tests. Generated blogs are stable across runs so tests can assert
// on exact content.
package fixtures

import (
	"fmt"

	"blogdesk/internal/domain/entity"
)

// Rotating source values for generated blogs. Indexing is deterministic so
// the same position always yields the same blog.
var (
	authors    = []string{"Dana Cole", "Eli Marsh", "Femke Vos", "Gus Ortiz", "Hana Sato"}
	categories = []string{"Travel", "Food", "Technology", "Health", "Education"}
	subCats    = []string{"Hiking", "Baking", "Go", "", "Languages"}
)

// BlogOptions configures a generated blog.
type BlogOptions struct {
	// Index seeds every field; equal indexes yield equal blogs.
	Index int

	// Persisted controls whether the blog carries a server identity and
	// persisted file URLs.
	Persisted bool
}

// GenerateBlog returns one deterministic blog.
//
// Example:
//
//	blog := fixtures.GenerateBlog(fixtures.BlogOptions{Index: 3, Persisted: true})
func GenerateBlog(opts BlogOptions) entity.Blog {
	i := opts.Index
	blog := entity.Blog{
		AuthorName:     authors[i%len(authors)],
		Title:          fmt.Sprintf("Field notes, part %d", i+1),
		Category:       categories[i%len(categories)],
		SubCategory:    subCats[i%len(subCats)],
		Summary:        fmt.Sprintf("Summary of the field notes in part %d.", i+1),
		Content:        fmt.Sprintf("Long-form content for part %d, padded well past the minimum length.", i+1),
		TravelTags:     []string{"notes", fmt.Sprintf("part-%d", i+1)},
		PublishingDate: fmt.Sprintf("2026-01-%02d", i%28+1),
	}
	if opts.Persisted {
		blog.ID = fmt.Sprintf("blog-%04d", i)
		blog.AuthorImage = fmt.Sprintf("https://cdn.example.com/authors/%d.png", i)
		blog.Media = []string{fmt.Sprintf("https://cdn.example.com/media/%d-a.jpg", i)}
	}
	return blog
}

// GenerateBlogList returns n persisted blogs in canonical (server) order.
func GenerateBlogList(n int) []entity.Blog {
	blogs := make([]entity.Blog, 0, n)
	for i := 0; i < n; i++ {
		blogs = append(blogs, GenerateBlog(BlogOptions{Index: i, Persisted: true}))
	}
	return blogs
}
