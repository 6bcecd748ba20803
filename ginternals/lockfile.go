package ginternals

import (
	"os"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// osExclCreate is the flag combination used to atomically create the
// lock file: fail instead of truncating/opening if it already exists.
const osExclCreate = os.O_RDWR | os.O_CREATE | os.O_EXCL

// Lockfile implements the hold/write/commit/rollback protocol used to
// serialize writes to a single file (a reference, the index, ...).
// A lock is a sibling file with a ".lock" suffix, created with an
// exclusive, fail-if-exists open. Holding it is the only way to write
// the protected file; committing renames the lock over it atomically.
type Lockfile struct {
	fs       afero.Fs
	path     string
	lockPath string
	file     afero.File
}

// NewLockfile returns a Lockfile protecting the given path. The lock
// is not acquired until Hold is called.
func NewLockfile(fs afero.Fs, path string) *Lockfile {
	return &Lockfile{
		fs:       fs,
		path:     path,
		lockPath: path + ".lock",
	}
}

// Hold attempts to acquire the lock by exclusively creating the
// ".lock" sibling file. Returns ErrLockBusy if someone else already
// holds it.
func (l *Lockfile) Hold() (err error) {
	if l.file != nil {
		return nil
	}

	f, err := l.fs.OpenFile(l.lockPath, osExclCreate, 0o644)
	if err != nil {
		if exists, statErr := afero.Exists(l.fs, l.lockPath); statErr == nil && exists {
			return xerrors.Errorf("%s: %w", l.lockPath, ErrLockBusy)
		}
		return xerrors.Errorf("could not create lock %s: %w", l.lockPath, err)
	}
	l.file = f
	return nil
}

// Write writes data to the held lock file. The lock must have been
// acquired with Hold first.
func (l *Lockfile) Write(data []byte) error {
	if l.file == nil {
		return ErrLockNotHeld
	}
	if _, err := l.file.Write(data); err != nil {
		return xerrors.Errorf("could not write to lock %s: %w", l.lockPath, err)
	}
	return nil
}

// Commit closes the lock file and atomically renames it over the
// protected path, releasing the lock.
func (l *Lockfile) Commit() error {
	if l.file == nil {
		return ErrLockNotHeld
	}
	if err := l.file.Close(); err != nil {
		return xerrors.Errorf("could not close lock %s: %w", l.lockPath, err)
	}
	l.file = nil

	if err := l.fs.Rename(l.lockPath, l.path); err != nil {
		return xerrors.Errorf("could not commit lock %s onto %s: %w", l.lockPath, l.path, err)
	}
	return nil
}

// Rollback closes and removes the lock file without touching the
// protected path.
func (l *Lockfile) Rollback() error {
	if l.file == nil {
		return nil
	}
	if err := l.file.Close(); err != nil {
		return xerrors.Errorf("could not close lock %s: %w", l.lockPath, err)
	}
	l.file = nil

	if err := l.fs.Remove(l.lockPath); err != nil {
		return xerrors.Errorf("could not remove lock %s: %w", l.lockPath, err)
	}
	return nil
}
