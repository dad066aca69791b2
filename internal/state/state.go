// Package state persists per-branch review state below the repository
// metadata root. Each tracked branch owns one directory holding a
// revision counter, a base-commit pointer and a patches directory; the
// scalar files are plain text with no trailing newline.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const (
	revisionFile   = "revision"
	baseCommitFile = "base-commit"
	patchesDirName = "patches"
)

var revisionPattern = regexp.MustCompile(`^[0-9]+$`)

// State is the persisted review state of a tracked branch.
type State struct {
	Revision   int    // current patch-series revision number
	BaseCommit string // diff base for patch generation, fixed at creation
	PatchesDir string // where generated patch files land
}

// Store reads and writes branch state below a metadata root directory.
type Store struct {
	root string
}

// NewStore returns a store rooted at the given metadata directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// BranchDir returns the state directory for branch.
func (s *Store) BranchDir(branch string) string {
	return filepath.Join(s.root, branch)
}

// Exists reports whether branch has a state directory.
func (s *Store) Exists(branch string) bool {
	info, err := os.Stat(s.BranchDir(branch))
	return err == nil && info.IsDir()
}

// Create lays out the state directory for branch. The revision file is
// written only when absent, so re-running create never resets a
// counter; the base commit is always overwritten.
func (s *Store) Create(branch, baseCommit string) (*State, error) {
	dir := s.BranchDir(branch)

	if err := os.MkdirAll(filepath.Join(dir, patchesDirName), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	revPath := filepath.Join(dir, revisionFile)
	if _, err := os.Stat(revPath); os.IsNotExist(err) {
		if err := os.WriteFile(revPath, []byte("1"), 0644); err != nil {
			return nil, fmt.Errorf("failed to write revision: %w", err)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, baseCommitFile), []byte(baseCommit), 0644); err != nil {
		return nil, fmt.Errorf("failed to write base commit: %w", err)
	}

	return s.Load(branch)
}

// Load reads the state of branch.
func (s *Store) Load(branch string) (*State, error) {
	rev, err := s.Revision(branch)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.BranchDir(branch), baseCommitFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read base commit: %w", err)
	}

	return &State{
		Revision:   rev,
		BaseCommit: strings.TrimSpace(string(data)),
		PatchesDir: filepath.Join(s.BranchDir(branch), patchesDirName),
	}, nil
}

// Revision returns the stored revision counter for branch.
func (s *Store) Revision(branch string) (int, error) {
	data, err := os.ReadFile(filepath.Join(s.BranchDir(branch), revisionFile))
	if err != nil {
		return 0, fmt.Errorf("failed to read revision: %w", err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("corrupt revision file: %w", err)
	}
	return n, nil
}

// SetRevision overwrites the revision counter for branch. The value
// must be a non-negative integer in decimal form; anything else is
// rejected without touching the stored value.
func (s *Store) SetRevision(branch, value string) error {
	if !revisionPattern.MatchString(value) {
		return fmt.Errorf("Revision must be an integer number")
	}
	return s.writeRevision(branch, value)
}

// IncrementRevision bumps the stored counter for branch by one and
// returns the new value.
func (s *Store) IncrementRevision(branch string) (int, error) {
	n, err := s.Revision(branch)
	if err != nil {
		return 0, err
	}
	if err := s.writeRevision(branch, strconv.Itoa(n+1)); err != nil {
		return 0, err
	}
	return n + 1, nil
}

func (s *Store) writeRevision(branch, value string) error {
	if err := os.WriteFile(filepath.Join(s.BranchDir(branch), revisionFile), []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write revision: %w", err)
	}
	return nil
}

// Remove recursively deletes the state directory for branch.
func (s *Store) Remove(branch string) error {
	return os.RemoveAll(s.BranchDir(branch))
}
