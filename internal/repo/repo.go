// Package repo locates the enclosing git repository and lays out the
// tool's metadata directories inside it.
package repo

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kilupskalvis/cu/internal/git"
)

const (
	metaDirName     = "x-cu"
	archivedDirName = "archived"
)

// Repo is the repository context shared by all operations: the git
// handle plus the resolved metadata paths.
type Repo struct {
	Git    *git.Git
	GitDir string

	root string
}

// Find resolves the enclosing repository through the git handle and
// ensures the metadata root and archive root exist. Directory creation
// is idempotent, so Find is safe to call on every invocation.
func Find(g *git.Git) (*Repo, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, fmt.Errorf("git not found in PATH")
	}

	gitDir, err := g.GitDir()
	if err != nil {
		return nil, fmt.Errorf("not a git repository (or any parent up to root)")
	}

	r := &Repo{
		Git:    g,
		GitDir: gitDir,
		root:   filepath.Join(gitDir, metaDirName),
	}

	if err := os.MkdirAll(r.root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create metadata root: %w", err)
	}
	if err := os.MkdirAll(r.ArchiveRoot(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive root: %w", err)
	}

	return r, nil
}

// Root returns the metadata root directory.
func (r *Repo) Root() string {
	return r.root
}

// ArchiveRoot returns the directory holding archived branch state.
func (r *Repo) ArchiveRoot() string {
	return filepath.Join(r.root, archivedDirName)
}
