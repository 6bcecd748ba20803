package fsbackend_test

import (
	"testing"

	"github.com/go-rgit/rgit/backend"
	"github.com/go-rgit/rgit/ginternals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadReference(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	oid := ginternals.NewOidFromContent([]byte("a commit"))
	ref := ginternals.NewReference(ginternals.LocalBranchFullName("feature"), oid)
	require.NoError(t, b.WriteReference(ref))

	got, err := b.Reference(ginternals.LocalBranchFullName("feature"))
	require.NoError(t, err)
	assert.Equal(t, oid, got.Target())
}

func TestWriteReferenceSafeRejectsExisting(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	oid := ginternals.NewOidFromContent([]byte("a commit"))
	ref := ginternals.NewReference(ginternals.LocalBranchFullName("feature"), oid)
	require.NoError(t, b.WriteReferenceSafe(ref))

	err := b.WriteReferenceSafe(ref)
	require.Error(t, err)
	assert.ErrorIs(t, err, ginternals.ErrRefExists)
}

func TestDeleteReference(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	oid := ginternals.NewOidFromContent([]byte("a commit"))
	ref := ginternals.NewReference(ginternals.LocalBranchFullName("feature"), oid)
	require.NoError(t, b.WriteReference(ref))
	require.NoError(t, b.DeleteReference(ginternals.LocalBranchFullName("feature")))

	_, err := b.Reference(ginternals.LocalBranchFullName("feature"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ginternals.ErrRefNotFound)
}

func TestDeleteReferenceMissing(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	err := b.DeleteReference(ginternals.LocalBranchFullName("ghost"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ginternals.ErrRefNotFound)
}

func TestWalkReferences(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	oid := ginternals.NewOidFromContent([]byte("a commit"))
	require.NoError(t, b.WriteReference(ginternals.NewReference(ginternals.LocalBranchFullName("master"), oid)))
	require.NoError(t, b.WriteReference(ginternals.NewReference(ginternals.LocalBranchFullName("dev"), oid)))

	names := map[string]bool{}
	err := b.WalkReferences(func(ref *ginternals.Reference) error {
		names[ref.Name()] = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, names[ginternals.LocalBranchFullName("master")])
	assert.True(t, names[ginternals.LocalBranchFullName("dev")])
}

func TestWalkReferencesStop(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	oid := ginternals.NewOidFromContent([]byte("a commit"))
	require.NoError(t, b.WriteReference(ginternals.NewReference(ginternals.LocalBranchFullName("master"), oid)))
	require.NoError(t, b.WriteReference(ginternals.NewReference(ginternals.LocalBranchFullName("dev"), oid)))

	count := 0
	err := b.WalkReferences(func(ref *ginternals.Reference) error {
		count++
		return backend.WalkStop
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
