package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"blogdesk/internal/mutation"
)

func (a *app) runDelete(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	var (
		id  string
		yes bool
	)
	fs.StringVar(&id, "id", "", "ID of the blog to delete")
	fs.BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("--id is required")
	}

	confirmer := mutation.AlwaysConfirm()
	if !yes {
		confirmer = promptConfirmer(os.Stdin)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	err := a.coord.Delete(ctx, id, confirmer)
	if errors.Is(err, mutation.ErrConfirmationDeclined) {
		fmt.Println("Delete cancelled.")
		return nil
	}
	return err
}

// promptConfirmer asks on the terminal before the delete is sent. Anything
// except an explicit "y"/"yes" declines.
func promptConfirmer(in *os.File) mutation.Confirmer {
	return mutation.ConfirmerFunc(func(_ context.Context, blogID string) (bool, error) {
		fmt.Printf("Delete blog %s? This cannot be undone. [y/N] ", blogID)
		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil {
			return false, fmt.Errorf("read confirmation: %w", err)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes", nil
	})
}
