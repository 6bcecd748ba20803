package object_test

import (
	"testing"

	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	t.Parallel()

	t.Run("NewTreeFromObject(tree.ToObject()) should return the same object", func(t *testing.T) {
		t.Parallel()

		blobID := ginternals.NewOidFromContent([]byte("hello world"))
		tree := object.NewTree([]object.TreeEntry{
			{Mode: object.ModeFile, ID: blobID, Path: "hello.txt"},
		})

		o := tree.ToObject()
		parsed, err := object.NewTreeFromObject(o)
		require.NoError(t, err)

		newO := parsed.ToObject()
		assert.Equal(t, o.ID(), newO.ID())
		assert.Equal(t, o.Bytes(), newO.Bytes())
	})

	t.Run("entries round-trip in the order they were given", func(t *testing.T) {
		t.Parallel()

		blobID := ginternals.NewOidFromContent([]byte("content"))
		entries := []object.TreeEntry{
			{Mode: object.ModeFile, ID: blobID, Path: "a.txt"},
			{Mode: object.ModeDirectory, ID: blobID, Path: "sub"},
		}
		tree := object.NewTree(entries)

		parsed, err := object.NewTreeFromObject(tree.ToObject())
		require.NoError(t, err)
		assert.Equal(t, entries, parsed.Entries())
	})

	t.Run("Entries should be immutable", func(t *testing.T) {
		t.Parallel()

		blobID := ginternals.NewOidFromContent([]byte("hello world"))
		tree := object.NewTree([]object.TreeEntry{
			{Mode: object.ModeFile, ID: blobID, Path: "blob"},
		})

		tree.Entries()[0].ID[0] = 0xe5
		assert.Equal(t, blobID, tree.Entries()[0].ID, "should not update entry ID")

		tree.Entries()[0].Path = "nope"
		assert.Equal(t, "blob", tree.Entries()[0].Path, "should not update entry Path")
	})

	t.Run("NewTreeFromObject rejects a non-tree object", func(t *testing.T) {
		t.Parallel()

		o := object.New(object.TypeBlob, []byte("not a tree"))
		_, err := object.NewTreeFromObject(o)
		require.Error(t, err)
	})
}

func TestTreeObjectMode(t *testing.T) {
	t.Parallel()

	assert.True(t, object.ModeFile.IsValid())
	assert.True(t, object.ModeExecutable.IsValid())
	assert.True(t, object.ModeDirectory.IsValid())
	assert.True(t, object.ModeSymLink.IsValid())
	assert.True(t, object.ModeGitLink.IsValid())
	assert.False(t, object.TreeObjectMode(0o100664).IsValid())

	assert.Equal(t, object.TypeTree, object.ModeDirectory.ObjectType())
	assert.Equal(t, object.TypeCommit, object.ModeGitLink.ObjectType())
	assert.Equal(t, object.TypeBlob, object.ModeFile.ObjectType())
	assert.Equal(t, object.TypeBlob, object.ModeExecutable.ObjectType())
}
