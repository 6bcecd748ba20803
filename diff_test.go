package rgit_test

import (
	"testing"

	"github.com/go-rgit/rgit"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffUnstaged(t *testing.T) {
	t.Setenv("AUTHOR_NAME", "Ada Lovelace")
	t.Setenv("AUTHOR_EMAIL", "ada@example.com")

	r, fs := initRepo(t)
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("one\ntwo\nthree\n"), 0o644))
	require.NoError(t, r.Add([]string{"a.txt"}))
	require.NoError(t, r.Commit("first"))

	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("one\nTWO\nthree\n"), 0o644))

	diffs, err := r.Diff(false)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, "a.txt", diffs[0].Path)
	assert.False(t, diffs[0].Binary)
	require.Len(t, diffs[0].Hunks, 1)
}

func TestDiffStaged(t *testing.T) {
	t.Setenv("AUTHOR_NAME", "Ada Lovelace")
	t.Setenv("AUTHOR_EMAIL", "ada@example.com")

	r, fs := initRepo(t)
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("one\ntwo\n"), 0o644))
	require.NoError(t, r.Add([]string{"a.txt"}))
	require.NoError(t, r.Commit("first"))

	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("one\ntwo\nthree\n"), 0o644))
	require.NoError(t, r.Add([]string{"a.txt"}))

	diffs, err := r.Diff(true)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, "a.txt", diffs[0].Path)
}

func TestDiffDetectsBinary(t *testing.T) {
	t.Setenv("AUTHOR_NAME", "Ada Lovelace")
	t.Setenv("AUTHOR_EMAIL", "ada@example.com")

	r, fs := initRepo(t)
	require.NoError(t, afero.WriteFile(fs, "/repo/bin.dat", []byte{0x00, 0x01, 0x02}, 0o644))
	require.NoError(t, r.Add([]string{"bin.dat"}))
	require.NoError(t, r.Commit("first"))

	require.NoError(t, afero.WriteFile(fs, "/repo/bin.dat", []byte{0x00, 0x01, 0x03}, 0o644))

	diffs, err := r.Diff(false)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.True(t, diffs[0].Binary)
	assert.Empty(t, diffs[0].Hunks)
}
