package ginternals_test

import (
	"testing"

	"github.com/go-rgit/rgit/ginternals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(path string, content byte) ginternals.IndexEntry {
	return ginternals.IndexEntry{
		Mode: 0o100644,
		Size: 12,
		Oid:  ginternals.NewOidFromContent([]byte{content}),
		Path: path,
	}
}

func TestIndexMarshalUnmarshalRoundTrip(t *testing.T) {
	t.Parallel()

	idx := ginternals.NewIndex()
	idx.Add(newTestEntry("b.txt", 'b'))
	idx.Add(newTestEntry("a.txt", 'a'))
	idx.Add(newTestEntry("dir/c.txt", 'c'))

	data := idx.Marshal()
	assert.Equal(t, "DIRC", string(data[0:4]))

	loaded := ginternals.NewIndex()
	require.NoError(t, loaded.Unmarshal(data))

	assert.Equal(t, idx.Entries(), loaded.Entries())
}

func TestIndexEntriesAreSortedByPath(t *testing.T) {
	t.Parallel()

	idx := ginternals.NewIndex()
	idx.Add(newTestEntry("z.txt", 'z'))
	idx.Add(newTestEntry("a.txt", 'a'))
	idx.Add(newTestEntry("m.txt", 'm'))

	paths := make([]string, 0, 3)
	for _, e := range idx.Entries() {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{"a.txt", "m.txt", "z.txt"}, paths)
}

func TestIndexAddReplacesFileWithDirectory(t *testing.T) {
	t.Parallel()

	idx := ginternals.NewIndex()
	idx.Add(newTestEntry("lib", 'f'))
	idx.Add(newTestEntry("lib/a.txt", 'a'))

	_, ok := idx.Get("lib")
	assert.False(t, ok, "the file entry should have been evicted by its new directory")
	_, ok = idx.Get("lib/a.txt")
	assert.True(t, ok)
}

func TestIndexAddReplacesDirectoryWithFile(t *testing.T) {
	t.Parallel()

	idx := ginternals.NewIndex()
	idx.Add(newTestEntry("lib/a.txt", 'a'))
	idx.Add(newTestEntry("lib", 'f'))

	_, ok := idx.Get("lib/a.txt")
	assert.False(t, ok, "the nested file should have been evicted by the new file at its parent path")
	_, ok = idx.Get("lib")
	assert.True(t, ok)
}

func TestIndexRemove(t *testing.T) {
	t.Parallel()

	idx := ginternals.NewIndex()
	idx.Add(newTestEntry("a.txt", 'a'))
	idx.Remove("a.txt")

	_, ok := idx.Get("a.txt")
	assert.False(t, ok)
	assert.True(t, idx.Changed())
}

func TestIndexUnmarshalRejectsBadSignature(t *testing.T) {
	t.Parallel()

	data := make([]byte, 32)
	copy(data, "NOPE")

	idx := ginternals.NewIndex()
	err := idx.Unmarshal(data)
	require.Error(t, err)
}

func TestIndexUnmarshalRejectsBadChecksum(t *testing.T) {
	t.Parallel()

	idx := ginternals.NewIndex()
	idx.Add(newTestEntry("a.txt", 'a'))
	data := idx.Marshal()
	data[len(data)-1] ^= 0xFF // corrupt the trailing checksum

	loaded := ginternals.NewIndex()
	err := loaded.Unmarshal(data)
	require.Error(t, err)
}

func TestIndexPaddingIsPreservedOnBoundary(t *testing.T) {
	t.Parallel()

	// A 10-byte path brings the 62-byte fixed prefix plus path to 72
	// bytes, exactly on an 8-byte boundary, and must still round-trip:
	// the minimum NUL padding rule is exercised either way.
	idx := ginternals.NewIndex()
	idx.Add(newTestEntry("exactly_10", '8'))
	idx.Add(newTestEntry("a", 'a'))

	data := idx.Marshal()
	loaded := ginternals.NewIndex()
	require.NoError(t, loaded.Unmarshal(data))
	assert.Equal(t, idx.Entries(), loaded.Entries())
}
