package fsbackend_test

import (
	"testing"

	"github.com/go-rgit/rgit/backend"
	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadObject(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	o := object.New(object.TypeBlob, []byte("hello world"))
	oid, err := b.WriteObject(o)
	require.NoError(t, err)
	assert.Equal(t, o.ID(), oid)

	has, err := b.HasObject(oid)
	require.NoError(t, err)
	assert.True(t, has)

	fromDisk, err := b.Object(oid)
	require.NoError(t, err)
	assert.Equal(t, o.Bytes(), fromDisk.Bytes())
	assert.Equal(t, o.Type(), fromDisk.Type())
}

func TestWriteObjectIsIdempotent(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	o := object.New(object.TypeBlob, []byte("same content"))
	oid1, err := b.WriteObject(o)
	require.NoError(t, err)
	oid2, err := b.WriteObject(o)
	require.NoError(t, err)
	assert.Equal(t, oid1, oid2)
}

func TestHasObjectMissing(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	has, err := b.HasObject(ginternals.NewOidFromContent([]byte("never written")))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestObjectMissing(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	_, err := b.Object(ginternals.NewOidFromContent([]byte("never written")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ginternals.ErrObjectNotFound)
}

func TestWalkLooseObjectIDs(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	o1 := object.New(object.TypeBlob, []byte("one"))
	o2 := object.New(object.TypeBlob, []byte("two"))
	_, err := b.WriteObject(o1)
	require.NoError(t, err)
	_, err = b.WriteObject(o2)
	require.NoError(t, err)

	found := map[ginternals.Oid]bool{}
	err = b.WalkLooseObjectIDs(func(oid ginternals.Oid) error {
		found[oid] = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, found[o1.ID()])
	assert.True(t, found[o2.ID()])
}

func TestPrefixMatch(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	o := object.New(object.TypeBlob, []byte("prefix me"))
	oid, err := b.WriteObject(o)
	require.NoError(t, err)

	matches, err := b.PrefixMatch(oid.String()[:6])
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, oid, matches[0])

	matches, err = b.PrefixMatch("ffffffffff")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestWalkLooseObjectIDsStop(t *testing.T) {
	t.Parallel()

	b, _ := newBackend(t)

	o1 := object.New(object.TypeBlob, []byte("one"))
	o2 := object.New(object.TypeBlob, []byte("two"))
	_, err := b.WriteObject(o1)
	require.NoError(t, err)
	_, err = b.WriteObject(o2)
	require.NoError(t, err)

	count := 0
	err = b.WalkLooseObjectIDs(func(oid ginternals.Oid) error {
		count++
		return backend.WalkStop
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
