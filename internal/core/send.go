package core

import (
	"fmt"

	"github.com/kilupskalvis/cu/internal/repo"
	"github.com/kilupskalvis/cu/internal/state"
)

// SendResult reports what a send produced.
type SendResult struct {
	Branch   string
	Revision int      // revision the series was labeled with
	Patches  []string // generated patch files, cover letter first
}

// Send generates the current branch's patch series at its stored
// revision, opens the cover letter for a final review, and mails the
// series. The revision counter is untouched; incrementing it afterwards
// is the caller's decision.
func Send(r *repo.Repo, st *state.Store) (*SendResult, error) {
	branch, err := r.Git.CurrentBranch()
	if err != nil {
		return nil, err
	}
	if !st.Exists(branch) {
		return nil, fmt.Errorf("can't send from a normal branch, create one with new")
	}

	desc, err := r.Git.Description(branch)
	if err != nil {
		return nil, err
	}
	if desc == "" {
		return nil, fmt.Errorf("use edit-cover before sending")
	}

	s, err := st.Load(branch)
	if err != nil {
		return nil, err
	}

	patches, err := r.Git.FormatPatch(s.Revision, s.BaseCommit, s.PatchesDir)
	if err != nil {
		return nil, err
	}
	if len(patches) == 0 {
		return nil, fmt.Errorf("no patches to send")
	}

	// Final review of the cover letter before anything leaves the
	// machine. format-patch lists it first.
	if err := r.Git.EditFile(patches[0]); err != nil {
		return nil, err
	}

	if err := r.Git.SendEmail(patches); err != nil {
		return nil, err
	}

	return &SendResult{Branch: branch, Revision: s.Revision, Patches: patches}, nil
}
