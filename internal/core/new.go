package core

import (
	"fmt"

	"github.com/kilupskalvis/cu/internal/repo"
	"github.com/kilupskalvis/cu/internal/state"
)

// BranchPrefix marks branches managed by this tool.
const BranchPrefix = "cu-"

// BranchName returns the managed branch name for a suffix.
func BranchName(suffix string) string {
	return BranchPrefix + suffix
}

// CreateBranch makes the tracked branch for suffix, checks it out, and
// lays out its review state with the current HEAD as the base commit.
// It returns the full branch name and the stored state.
func CreateBranch(r *repo.Repo, st *state.Store, suffix string) (string, *state.State, error) {
	if suffix == "" {
		return "", nil, fmt.Errorf("branch name cannot be empty")
	}
	name := BranchName(suffix)

	// Capture the base before touching branches; checkout -b keeps
	// HEAD on the same commit.
	head, err := r.Git.Head()
	if err != nil {
		return "", nil, err
	}

	if err := r.Git.CreateBranch(name); err != nil {
		return "", nil, err
	}

	s, err := st.Create(name, head)
	if err != nil {
		return "", nil, err
	}
	return name, s, nil
}
