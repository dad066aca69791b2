package core

import (
	"github.com/kilupskalvis/cu/internal/repo"
	"github.com/kilupskalvis/cu/internal/state"
)

// SetRevision force-sets the revision counter of the current branch.
// Validation of the value lives in the store.
func SetRevision(r *repo.Repo, st *state.Store, value string) error {
	branch, err := r.Git.CurrentBranch()
	if err != nil {
		return err
	}
	return st.SetRevision(branch, value)
}
