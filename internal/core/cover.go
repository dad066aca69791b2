package core

import (
	"fmt"

	"github.com/kilupskalvis/cu/internal/repo"
)

// EditCover opens the current branch's description in the user's editor
// so the cover letter can be composed. The trunk branches have no cover
// letter and are refused.
func EditCover(r *repo.Repo) error {
	branch, err := r.Git.CurrentBranch()
	if err != nil {
		return err
	}
	if branch == "master" || branch == "main" {
		return fmt.Errorf("can't edit a cover letter on '%s'", branch)
	}

	return r.Git.EditDescription()
}
