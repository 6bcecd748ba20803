package rgit_test

import (
	"testing"

	"github.com/go-rgit/rgit"
	"github.com/go-rgit/rgit/ginternals"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchLifecycle(t *testing.T) {
	t.Setenv("AUTHOR_NAME", "Ada Lovelace")
	t.Setenv("AUTHOR_EMAIL", "ada@example.com")

	r, fs := initRepo(t)
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("hello\n"), 0o644))
	require.NoError(t, r.Add([]string{"a.txt"}))
	require.NoError(t, r.Commit("first"))

	require.NoError(t, r.Branch("feature", ""))

	branches, err := r.ListBranches()
	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Equal(t, "feature", branches[0].Name)
	assert.Equal(t, "master", branches[1].Name)
	assert.True(t, branches[1].Current)
	assert.False(t, branches[0].Current)

	err = r.Branch("feature", "")
	assert.ErrorIs(t, err, ginternals.ErrBranchExists)

	require.NoError(t, r.DeleteBranch("feature"))
	branches, err = r.ListBranches()
	require.NoError(t, err)
	require.Len(t, branches, 1)

	err = r.DeleteBranch("feature")
	assert.ErrorIs(t, err, ginternals.ErrUnknownRevision)
}

func TestBranchInvalidName(t *testing.T) {
	r, _ := initRepo(t)
	err := r.Branch("bad..name", "")
	assert.ErrorIs(t, err, ginternals.ErrInvalidBranchName)
}
