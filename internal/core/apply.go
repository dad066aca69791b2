package core

import (
	"context"
	"fmt"

	"github.com/kilupskalvis/cu/internal/patchwork"
	"github.com/kilupskalvis/cu/internal/repo"
)

// Apply fetches the patch or series with the given ID from the tracking
// service and replays its mailbox onto the current branch. Conflicts
// from the mailbox apply propagate unchanged.
func Apply(ctx context.Context, r *repo.Repo, c *patchwork.Client, kind, id string) error {
	if id == "" {
		return fmt.Errorf("Please provide an ID")
	}

	mbox, err := c.Mbox(ctx, kind, id)
	if err != nil {
		return err
	}
	defer mbox.Close()

	return r.Git.ApplyMbox(mbox)
}
