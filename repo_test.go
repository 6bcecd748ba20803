package rgit_test

import (
	"testing"

	"github.com/go-rgit/rgit"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRepository(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	r, err := rgit.InitRepositoryWithOptions("/repo", rgit.InitOptions{Fs: fs})
	require.NoError(t, err)
	assert.Equal(t, "/repo", r.Root())

	exists, err := afero.DirExists(fs, "/repo/.rgit/objects")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInitRepositoryIsIdempotent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	_, err := rgit.InitRepositoryWithOptions("/repo", rgit.InitOptions{Fs: fs})
	require.NoError(t, err)
	_, err = rgit.InitRepositoryWithOptions("/repo", rgit.InitOptions{Fs: fs})
	require.NoError(t, err)
}

func TestOpenRepositoryNotExist(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	_, err := rgit.OpenRepositoryWithOptions("/repo", rgit.OpenOptions{Fs: fs})
	require.ErrorIs(t, err, rgit.ErrRepositoryNotExist)
}

func TestOpenRepository(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	_, err := rgit.InitRepositoryWithOptions("/repo", rgit.InitOptions{Fs: fs})
	require.NoError(t, err)

	r, err := rgit.OpenRepositoryWithOptions("/repo", rgit.OpenOptions{Fs: fs})
	require.NoError(t, err)
	assert.Equal(t, "/repo", r.Root())
}
