package workspace_test

import (
	"testing"

	"github.com/go-rgit/rgit/ginternals/object"
	"github.com/go-rgit/rgit/internal/workspace"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFilesRecursesAndSorts(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/f/g.txt", []byte("g"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/.rgit/HEAD", []byte("ref: refs/heads/master\n"), 0o644))

	ws := workspace.New(fs, "/repo")
	entries, err := ws.ListFiles()
	require.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{"a.txt", "f/g.txt"}, paths)
}

func TestListFilesHonorsIgnoreFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/.rgitignore", []byte("build\n*.log\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/debug.log", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/build/out.bin", []byte("x"), 0o644))

	ws := workspace.New(fs, "/repo")
	entries, err := ws.ListFiles()
	require.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{".rgitignore", "a.txt"}, paths)
}

func TestListFilesMarksExecutableMode(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/run.sh", []byte("#!/bin/sh\n"), 0o755))

	ws := workspace.New(fs, "/repo")
	entries, err := ws.ListFiles()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, object.ModeExecutable, entries[0].Mode)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("hello"), 0o644))

	ws := workspace.New(fs, "/repo")
	data, err := ws.ReadFile("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}
