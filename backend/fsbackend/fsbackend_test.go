package fsbackend_test

import (
	"testing"

	"github.com/go-rgit/rgit/backend/fsbackend"
	"github.com/go-rgit/rgit/ginternals"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) (*fsbackend.Backend, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	b := fsbackend.New(fs, "/repo/.rgit")
	require.NoError(t, b.Init())
	return b, fs
}

func TestInit(t *testing.T) {
	t.Parallel()

	b, fs := newBackend(t)

	exists, err := afero.DirExists(fs, "/repo/.rgit/objects")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = afero.DirExists(fs, "/repo/.rgit/refs/heads")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := afero.ReadFile(fs, "/repo/.rgit/HEAD")
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/master\n", string(data))

	exists, err = afero.Exists(fs, "/repo/.rgit/config")
	require.NoError(t, err)
	assert.True(t, exists)

	// HEAD points at refs/heads/master, an unborn branch right after
	// Init: resolving it all the way through fails until the first
	// commit creates the branch ref, same as a fresh real repository
	_, err = b.Reference(ginternals.Head)
	require.Error(t, err)
	assert.ErrorIs(t, err, ginternals.ErrRefNotFound)

	oid := ginternals.NewOidFromContent([]byte("first commit"))
	require.NoError(t, b.WriteReference(ginternals.NewReference(ginternals.LocalBranchFullName(ginternals.Master), oid)))

	head, err := b.Reference(ginternals.Head)
	require.NoError(t, err)
	assert.Equal(t, ginternals.SymbolicReference, head.Type())
	assert.Equal(t, oid, head.Target())
}

func TestLoadAndWriteIndex(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	idx, err := b.LoadIndex()
	require.NoError(t, err)
	assert.Empty(t, idx.Entries())

	idx.Add(ginternals.IndexEntry{
		Mode: 0o100644,
		Size: 4,
		Oid:  ginternals.NewOidFromContent([]byte("data")),
		Path: "a.txt",
	})
	require.NoError(t, b.WriteIndex(idx))

	reloaded, err := b.LoadIndex()
	require.NoError(t, err)
	assert.Equal(t, idx.Entries(), reloaded.Entries())
}
