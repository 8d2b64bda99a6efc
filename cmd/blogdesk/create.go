package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"blogdesk/internal/draft"
)

func (a *app) runCreate(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	var (
		author      string
		title       string
		category    string
		subCategory string
		summary     string
		content     string
		tags        string
		date        string
		authorImage string
		media       multiFlag
	)
	fs.StringVar(&author, "author", "", "Author name")
	fs.StringVar(&title, "title", "", "Blog title")
	fs.StringVar(&category, "category", "", "Category (one of the configured options)")
	fs.StringVar(&subCategory, "subcategory", "", "Optional sub-category")
	fs.StringVar(&summary, "summary", "", "Short summary")
	fs.StringVar(&content, "content", "", "Full content")
	fs.StringVar(&tags, "tags", "", "Comma-separated travel tags")
	fs.StringVar(&date, "date", "", "Publishing date (YYYY-MM-DD, defaults to today)")
	fs.StringVar(&authorImage, "author-image", "", "Path to the author image file")
	fs.Var(&media, "media", "Path to a media file (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d := draft.New()
	d.AuthorName = author
	d.Title = title
	d.Category = category
	d.SubCategory = subCategory
	d.Summary = summary
	d.Content = content
	d.SetTagsInput(tags)
	if date != "" {
		d.PublishingDate = date
	}
	if err := attachFiles(d, authorImage, media); err != nil {
		return err
	}

	if !reportViolations(d, a.categories) {
		return fmt.Errorf("blog not created")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	created, err := a.coord.Create(ctx, d.Payload())
	if err != nil {
		return err
	}
	fmt.Printf("Created blog %s\n", created.ID)
	return nil
}

// attachFiles reads the selected files into the draft.
func attachFiles(d *draft.Draft, authorImage string, media []string) error {
	if authorImage != "" {
		content, err := os.ReadFile(authorImage) // #nosec G304 -- path comes from the CLI flag
		if err != nil {
			return fmt.Errorf("read author image: %w", err)
		}
		d.SetAuthorImage(authorImage, content)
	}
	for _, path := range media {
		content, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI flag
		if err != nil {
			return fmt.Errorf("read media file: %w", err)
		}
		d.AddMedia(path, content)
	}
	return nil
}

// reportViolations prints every validation violation and reports whether the
// draft may be submitted.
func reportViolations(d *draft.Draft, categories []string) bool {
	violations := draft.NewValidator(categories).Validate(d)
	if len(violations) == 0 {
		return true
	}
	for _, v := range violations {
		fmt.Fprintf(os.Stderr, "invalid %s: %s\n", v.Field, v.Message)
	}
	return false
}
