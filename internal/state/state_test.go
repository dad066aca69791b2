package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a store over a temporary metadata root.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir())
}

func TestCreate_InitialState(t *testing.T) {
	st := newTestStore(t)

	s, err := st.Create("cu-foo", "abc123def456")
	require.NoError(t, err)

	assert.Equal(t, 1, s.Revision)
	assert.Equal(t, "abc123def456", s.BaseCommit)
	assert.DirExists(t, s.PatchesDir)
}

func TestCreate_PlainTextLayout(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Create("cu-foo", "abc123")
	require.NoError(t, err)

	// scalar files hold the bare value, no trailing newline
	rev, err := os.ReadFile(filepath.Join(st.BranchDir("cu-foo"), "revision"))
	require.NoError(t, err)
	assert.Equal(t, "1", string(rev))

	base, err := os.ReadFile(filepath.Join(st.BranchDir("cu-foo"), "base-commit"))
	require.NoError(t, err)
	assert.Equal(t, "abc123", string(base))
}

func TestCreate_KeepsExistingRevision(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Create("cu-foo", "first")
	require.NoError(t, err)
	require.NoError(t, st.SetRevision("cu-foo", "7"))

	// re-entry must not reset the counter, but the base moves
	s, err := st.Create("cu-foo", "second")
	require.NoError(t, err)
	assert.Equal(t, 7, s.Revision)
	assert.Equal(t, "second", s.BaseCommit)
}

func TestLoad_MissingState(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Load("cu-ghost")
	assert.Error(t, err)
}

func TestSetRevision(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Create("cu-foo", "abc")
	require.NoError(t, err)

	require.NoError(t, st.SetRevision("cu-foo", "3"))

	n, err := st.Revision("cu-foo")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSetRevision_AllowsZero(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Create("cu-foo", "abc")
	require.NoError(t, err)

	require.NoError(t, st.SetRevision("cu-foo", "0"))

	n, err := st.Revision("cu-foo")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSetRevision_RejectsNonInteger(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Create("cu-foo", "abc")
	require.NoError(t, err)

	for _, bad := range []string{"v2", "-1", "1.5", "", " 1", "1 ", "two"} {
		err := st.SetRevision("cu-foo", bad)
		assert.EqualError(t, err, "Revision must be an integer number", "value %q", bad)

		n, err := st.Revision("cu-foo")
		require.NoError(t, err)
		assert.Equal(t, 1, n, "value %q must not modify the stored revision", bad)
	}
}

func TestIncrementRevision(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Create("cu-foo", "abc")
	require.NoError(t, err)

	n, err := st.IncrementRevision("cu-foo")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = st.IncrementRevision("cu-foo")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	stored, err := st.Revision("cu-foo")
	require.NoError(t, err)
	assert.Equal(t, 3, stored)
}

func TestIncrementRevision_MissingState(t *testing.T) {
	st := newTestStore(t)

	_, err := st.IncrementRevision("cu-ghost")
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	st := newTestStore(t)

	assert.False(t, st.Exists("cu-foo"))

	_, err := st.Create("cu-foo", "abc")
	require.NoError(t, err)
	assert.True(t, st.Exists("cu-foo"))
}

func TestRemove(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Create("cu-foo", "abc")
	require.NoError(t, err)

	require.NoError(t, st.Remove("cu-foo"))
	assert.False(t, st.Exists("cu-foo"))

	// removing twice is fine
	assert.NoError(t, st.Remove("cu-foo"))
}
