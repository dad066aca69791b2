package core

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kilupskalvis/cu/internal/git"
	"github.com/kilupskalvis/cu/internal/repo"
	"github.com/kilupskalvis/cu/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEnv builds a real git repository with one commit and returns
// the repository context and state store the operations work against.
// Tests are skipped when git is unavailable.
func newTestEnv(t *testing.T) (*repo.Repo, *state.Store) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}

	dir := t.TempDir()
	grun(t, dir, "git", "init", "-b", "master", ".")
	grun(t, dir, "git", "config", "user.name", "tester")
	grun(t, dir, "git", "config", "user.email", "tester@example.com")

	writeFile(t, filepath.Join(dir, "file"), "this is master\n")
	grun(t, dir, "git", "add", "file")
	grun(t, dir, "git", "commit", "-m", "initial commit")

	r, err := repo.Find(git.New(dir))
	require.NoError(t, err)

	return r, state.NewStore(r.Root())
}

// workTree returns the working tree a test repository lives in.
func workTree(r *repo.Repo) string {
	return filepath.Dir(r.GitDir)
}

func grun(t *testing.T, dir string, cmdline ...string) string {
	t.Helper()
	cmd := exec.Command(cmdline[0], cmdline[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("ran %s: %v\n%s", strings.Join(cmdline, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
}

// commitFile writes name with content in the working tree and commits it.
func commitFile(t *testing.T, r *repo.Repo, name, content, msg string) {
	t.Helper()
	wt := workTree(r)
	writeFile(t, filepath.Join(wt, name), content)
	grun(t, wt, "git", "add", name)
	grun(t, wt, "git", "commit", "-m", msg)
}

func TestCreateBranch(t *testing.T) {
	r, st := newTestEnv(t)

	head, err := r.Git.Head()
	require.NoError(t, err)

	name, s, err := CreateBranch(r, st, "feature")
	require.NoError(t, err)

	assert.Equal(t, "cu-feature", name)
	assert.Equal(t, 1, s.Revision)
	assert.Equal(t, head, s.BaseCommit)
	assert.DirExists(t, s.PatchesDir)

	current, err := r.Git.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "cu-feature", current)
}

func TestCreateBranch_EmptyName(t *testing.T) {
	r, st := newTestEnv(t)

	_, _, err := CreateBranch(r, st, "")
	assert.EqualError(t, err, "branch name cannot be empty")
}

func TestCreateBranch_AlreadyExists(t *testing.T) {
	r, st := newTestEnv(t)

	_, _, err := CreateBranch(r, st, "feature")
	require.NoError(t, err)
	require.NoError(t, st.SetRevision("cu-feature", "5"))
	grun(t, workTree(r), "git", "checkout", "master")

	_, _, err = CreateBranch(r, st, "feature")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// the existing branch's state is untouched
	n, err := st.Revision("cu-feature")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestCreateBranch_BaseCommitPinned(t *testing.T) {
	r, st := newTestEnv(t)

	head, err := r.Git.Head()
	require.NoError(t, err)

	_, _, err = CreateBranch(r, st, "feature")
	require.NoError(t, err)
	commitFile(t, r, "work.txt", "work\n", "more work")

	// HEAD moved, the stored base did not
	s, err := st.Load("cu-feature")
	require.NoError(t, err)
	assert.Equal(t, head, s.BaseCommit)
}
