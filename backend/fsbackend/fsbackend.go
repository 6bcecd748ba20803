// Package fsbackend contains an implementation of the backend.Backend
// interface backed by a filesystem (real or in-memory, through afero)
package fsbackend

import (
	"path/filepath"

	"github.com/go-rgit/rgit/backend"
	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/internal/cache"
	"github.com/go-rgit/rgit/internal/syncutil"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// we make sure the struct implements the interface
var _ backend.Backend = (*Backend)(nil)

// defaultCacheSize is the number of decompressed objects kept in
// memory between reads
const defaultCacheSize = 256

// defaultMutexCount is the number of stripes used by the per-OID
// named mutex
const defaultMutexCount = 64

// Backend is a backend.Backend implementation that uses the
// filesystem to store data, rooted at a repository's metadir
type Backend struct {
	fs   afero.Fs
	root string

	objectMu *syncutil.NamedMutex
	cache    *cache.LRU
}

// New returns a new Backend rooted at root (the metadir, e.g.
// "/path/to/repo/.rgit")
func New(fs afero.Fs, root string) *Backend {
	return &Backend{
		fs:       fs,
		root:     root,
		objectMu: syncutil.NewNamedMutex(defaultMutexCount),
		cache:    cache.NewLRU(defaultCacheSize),
	}
}

// Close frees the resources held by the backend
func (b *Backend) Close() error {
	return nil
}

// Init initializes a repository: creates the metadir layout and
// writes the default config
func (b *Backend) Init() error {
	dirs := []string{
		ginternals.ObjectsPath(),
		ginternals.LocalBranchesPath(),
	}
	for _, d := range dirs {
		fullPath := b.path(d)
		if err := b.fs.MkdirAll(fullPath, 0o750); err != nil {
			return xerrors.Errorf("could not create directory %s: %w", d, err)
		}
	}

	descPath := b.path(ginternals.DescriptionFileName)
	desc := []byte("Unnamed repository; edit this file 'description' to name the repository.\n")
	if err := afero.WriteFile(b.fs, descPath, desc, 0o644); err != nil {
		return xerrors.Errorf("could not create %s: %w", descPath, err)
	}

	head := ginternals.NewSymbolicReference(ginternals.Head, ginternals.LocalBranchFullName(ginternals.Master))
	if err := b.WriteReference(head); err != nil {
		return xerrors.Errorf("could not write HEAD: %w", err)
	}

	if err := b.setDefaultCfg(); err != nil {
		return xerrors.Errorf("could not set the default config: %w", err)
	}

	return nil
}

// path joins a metadir-relative, unix-style path p to the backend's root,
// converting it to the host's path format
func (b *Backend) path(p string) string {
	return filepath.Join(b.root, filepath.FromSlash(p))
}
