package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"blogdesk/internal/domain/entity"
	"blogdesk/internal/draft"
)

func (a *app) runUpdate(args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	var (
		id          string
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
	fs.StringVar(&id, "id", "", "ID of the blog to update")
	fs.StringVar(&author, "author", "", "Author name")
	fs.StringVar(&title, "title", "", "Blog title")
	fs.StringVar(&category, "category", "", "Category (one of the configured options)")
	fs.StringVar(&subCategory, "subcategory", "", "Sub-category")
	fs.StringVar(&summary, "summary", "", "Short summary")
	fs.StringVar(&content, "content", "", "Full content")
	fs.StringVar(&tags, "tags", "", "Comma-separated travel tags")
	fs.StringVar(&date, "date", "", "Publishing date (YYYY-MM-DD)")
	fs.StringVar(&authorImage, "author-image", "", "Path to a new author image (unset keeps the current one)")
	fs.Var(&media, "media", "Path to a new media file, repeatable (unset keeps the current set)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("--id is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snap, err := a.store.Load(ctx)
	if err != nil {
		printErrorPanel(err)
		return fmt.Errorf("failed to load blogs")
	}

	d := draft.New()
	found := false
	for _, b := range snap.Blogs {
		if b.ID == id {
			d.PopulateFrom(b)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", entity.ErrNotFound, id)
	}

	// Only flags the user actually set override the persisted fields.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "author":
			d.AuthorName = author
		case "title":
			d.Title = title
		case "category":
			d.Category = category
		case "subcategory":
			d.SubCategory = subCategory
		case "summary":
			d.Summary = summary
		case "content":
			d.Content = content
		case "tags":
			d.SetTagsInput(tags)
		case "date":
			d.PublishingDate = date
		}
	})
	if err := attachFiles(d, authorImage, media); err != nil {
		return err
	}

	if !reportViolations(d, a.categories) {
		return fmt.Errorf("blog not updated")
	}

	updated, err := a.coord.Update(ctx, d.ID(), d.Payload())
	if err != nil {
		return err
	}
	fmt.Printf("Updated blog %s\n", updated.ID)
	return nil
}
