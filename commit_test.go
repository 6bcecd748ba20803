package rgit_test

import (
	"testing"

	"github.com/go-rgit/rgit"
	"github.com/go-rgit/rgit/ginternals"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitRequiresAuthorConfig(t *testing.T) {
	t.Parallel()

	r, fs := initRepo(t)
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("hello\n"), 0o644))
	require.NoError(t, r.Add([]string{"a.txt"}))

	err := r.Commit("no author")
	assert.ErrorIs(t, err, ginternals.ErrMissingAuthorConfig)
}

func TestCommitRoundTrip(t *testing.T) {
	t.Setenv("AUTHOR_NAME", "Ada Lovelace")
	t.Setenv("AUTHOR_EMAIL", "ada@example.com")

	r, fs := initRepo(t)
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("hello\n"), 0o644))
	require.NoError(t, r.Add([]string{"a.txt"}))
	require.NoError(t, r.Commit("first commit"))

	head, err := r.Resolve("@")
	require.NoError(t, err)
	assert.False(t, head.IsZero())

	branchRef, err := r.Backend().Reference(ginternals.LocalBranchFullName(ginternals.Master))
	require.NoError(t, err)
	assert.Equal(t, head, branchRef.Target())
}

func TestCommitNothingToCommit(t *testing.T) {
	t.Setenv("AUTHOR_NAME", "Ada Lovelace")
	t.Setenv("AUTHOR_EMAIL", "ada@example.com")

	r, fs := initRepo(t)
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("hello\n"), 0o644))
	require.NoError(t, r.Add([]string{"a.txt"}))
	require.NoError(t, r.Commit("first commit"))

	require.NoError(t, r.Add([]string{"a.txt"}))
	err := r.Commit("no changes")
	assert.ErrorIs(t, err, ginternals.ErrNothingToCommit)
}

func TestCommitParentChain(t *testing.T) {
	t.Setenv("AUTHOR_NAME", "Ada Lovelace")
	t.Setenv("AUTHOR_EMAIL", "ada@example.com")

	r, fs := initRepo(t)
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("hello\n"), 0o644))
	require.NoError(t, r.Add([]string{"a.txt"}))
	require.NoError(t, r.Commit("first"))
	first, err := r.Resolve("@")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("hello again\n"), 0o644))
	require.NoError(t, r.Add([]string{"a.txt"}))
	require.NoError(t, r.Commit("second"))

	parent, err := r.Resolve("@^")
	require.NoError(t, err)
	assert.Equal(t, first, parent)

	_, err = r.Resolve("@^^")
	assert.ErrorIs(t, err, ginternals.ErrNoParent)
}
