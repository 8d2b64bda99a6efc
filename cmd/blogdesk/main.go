// Package main provides the blogdesk CLI for managing blogs on a remote
// blog API.
// Usage: blogdesk <list|create|update|delete> [flags]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"blogdesk/internal/cache"
	"blogdesk/internal/client"
	"blogdesk/internal/config"
	"blogdesk/internal/mutation"
	"blogdesk/internal/notify"
	"blogdesk/internal/observability/logging"
)

// app bundles the wired components every subcommand works with.
type app struct {
	cfg        *config.Config
	categories []string
	client     *client.Client
	store      *cache.Store
	coord      *mutation.Coordinator
	logger     *slog.Logger
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Optional .env bootstrap for local development.
	_ = godotenv.Load()

	logger := logging.NewTextLogger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	categories, err := config.LoadCategories()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := newApp(cfg, categories, logger)

	var runErr error
	switch os.Args[1] {
	case "list":
		runErr = a.runList(os.Args[2:])
	case "create":
		runErr = a.runCreate(os.Args[2:])
	case "update":
		runErr = a.runUpdate(os.Args[2:])
	case "delete":
		runErr = a.runDelete(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Error: Unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// newApp wires config -> client -> cache -> coordinator -> channels.
func newApp(cfg *config.Config, categories []string, logger *slog.Logger) *app {
	apiClient := client.New(client.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout,
		UserAgent:         "blogdesk/1.0",
		RequestsPerSecond: float64(cfg.API.RequestsPerSecond),
		Burst:             cfg.API.Burst,
	})
	store := cache.New(apiClient, logger)
	channels := []notify.Channel{
		notify.NewConsoleChannel(os.Stdout, true),
		notify.NewLogChannel(logger, true),
	}
	coord := mutation.New(apiClient, store, notify.NewFanout(channels, logger), logger)

	return &app{
		cfg:        cfg,
		categories: categories,
		client:     apiClient,
		store:      store,
		coord:      coord,
		logger:     logger,
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: blogdesk <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  list     List blogs with optional search and pagination")
	fmt.Fprintln(os.Stderr, "  create   Create a new blog")
	fmt.Fprintln(os.Stderr, "  update   Update an existing blog")
	fmt.Fprintln(os.Stderr, "  delete   Delete a blog (asks for confirmation)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  blogdesk list --search travel --page 2")
	fmt.Fprintln(os.Stderr, "  blogdesk create --author \"Dana Cole\" --title \"Hiking the Alps\" \\")
	fmt.Fprintln(os.Stderr, "    --category Travel --summary \"...\" --content \"...\" --author-image dana.png")
	fmt.Fprintln(os.Stderr, "  blogdesk delete --id 66b1f0c2 --yes")
}

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string {
	return fmt.Sprint([]string(*m))
}

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}
