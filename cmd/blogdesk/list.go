package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"blogdesk/internal/common/pagination"
	"blogdesk/internal/domain/entity"
	"blogdesk/internal/view"
)

// ListOutput is the JSON output of the list command.
type ListOutput struct {
	Blogs []entity.Blog       `json:"blogs"`
	Meta  pagination.Metadata `json:"meta"`
}

func (a *app) runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var (
		search       string
		page         int
		limit        int
		outputFormat string
	)
	fs.StringVar(&search, "search", "", "Filter by author, category or sub-category substring")
	fs.IntVar(&page, "page", 1, "Page number (clamped to the available range)")
	fs.IntVar(&limit, "limit", a.cfg.Pagination.PageSize, "Blogs per page")
	fs.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if limit < 1 || limit > a.cfg.Pagination.MaxPageSize {
		limit = a.cfg.Pagination.PageSize
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snap, err := a.store.Load(ctx)
	if err != nil {
		printErrorPanel(err)
		return fmt.Errorf("failed to load blogs")
	}

	v := view.Derive(snap.Blogs, view.Query{Search: search, Page: page, PageSize: limit})

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ListOutput{Blogs: v.Blogs, Meta: v.Meta})
	}

	if v.Meta.Total == 0 {
		if search != "" {
			fmt.Printf("No blogs match %q.\n", search)
		} else {
			fmt.Println("No blogs yet.")
		}
		return nil
	}

	for _, b := range v.Blogs {
		category := b.Category
		if b.SubCategory != "" {
			category += " / " + b.SubCategory
		}
		fmt.Printf("%-12s  %-28s  %-24s  %s\n", b.ID, truncate(b.Title, 28), category, b.AuthorName)
	}
	fmt.Printf("\nPage %d of %d (%d blogs)\n", v.Meta.Page, v.Meta.TotalPages, v.Meta.Total)
	return nil
}

// printErrorPanel renders the persistent failure state of the list: the
// cache settled in error after exhausting its retries.
func printErrorPanel(err error) {
	fmt.Fprintln(os.Stderr, "+----------------------------------------------+")
	fmt.Fprintln(os.Stderr, "| Could not load blogs.                        |")
	fmt.Fprintln(os.Stderr, "| The list stays unavailable until a refresh   |")
	fmt.Fprintln(os.Stderr, "| succeeds. Check the API and try again.       |")
	fmt.Fprintln(os.Stderr, "+----------------------------------------------+")
	fmt.Fprintf(os.Stderr, "cause: %v\n", err)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
