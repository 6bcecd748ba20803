package fsbackend

import (
	"os"

	"github.com/go-rgit/rgit/ginternals"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// LoadIndex reads the staging index from disk. A fresh, empty index
// is returned if none exists yet (e.g. right after Init)
func (b *Backend) LoadIndex() (*ginternals.Index, error) {
	p := b.path(ginternals.IndexFileName)
	data, err := afero.ReadFile(b.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return ginternals.NewIndex(), nil
		}
		return nil, xerrors.Errorf("could not read index at %s: %w", p, err)
	}

	idx := ginternals.NewIndex()
	if err := idx.Unmarshal(data); err != nil {
		return nil, xerrors.Errorf("could not parse index at %s: %w", p, err)
	}
	return idx, nil
}

// WriteIndex persists the staging index to disk, through the
// lockfile protocol, so a reader never observes a half-written index.
// If idx hasn't changed since it was loaded, the lock is released and
// nothing is written.
func (b *Backend) WriteIndex(idx *ginternals.Index) error {
	p := b.path(ginternals.IndexFileName)

	lock := ginternals.NewLockfile(b.fs, p)
	if err := lock.Hold(); err != nil {
		return xerrors.Errorf("could not lock index: %w", err)
	}

	if !idx.Changed() {
		return lock.Rollback()
	}

	if err := lock.Write(idx.Marshal()); err != nil {
		_ = lock.Rollback()
		return xerrors.Errorf("could not write index: %w", err)
	}
	if err := lock.Commit(); err != nil {
		return xerrors.Errorf("could not persist index: %w", err)
	}
	return nil
}
