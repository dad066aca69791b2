package core

import (
	"fmt"

	"github.com/kilupskalvis/cu/internal/repo"
	"github.com/kilupskalvis/cu/internal/state"
)

// ArchiveBranch snapshots the state directory of branch into the
// archive root, then deletes the state directory and the git branch. It
// returns the archive path.
//
// The three steps run in order with no rollback: a failure after
// compression leaves both the archive entry and the live branch behind,
// and a re-run refuses on the surviving branch until it is cleaned up
// by hand.
func ArchiveBranch(r *repo.Repo, st *state.Store, branch string) (string, error) {
	current, err := r.Git.CurrentBranch()
	if err != nil {
		return "", err
	}
	if branch == current {
		return "", fmt.Errorf("can't cleanup the branch you're inside")
	}

	exists, err := r.Git.BranchExists(branch)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("branch '%s' not found", branch)
	}

	if !st.Exists(branch) {
		return "", fmt.Errorf("branch '%s' is not tracked", branch)
	}

	path, err := st.Archive(branch, r.ArchiveRoot())
	if err != nil {
		return "", err
	}
	if err := st.Remove(branch); err != nil {
		return "", err
	}
	if err := r.Git.DeleteBranch(branch); err != nil {
		return "", err
	}
	return path, nil
}
