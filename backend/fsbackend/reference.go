package fsbackend

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-rgit/rgit/backend"
	"github.com/go-rgit/rgit/ginternals"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Reference returns a stored reference from its name.
// ErrRefNotFound is returned if the reference doesn't exist
func (b *Backend) Reference(name string) (*ginternals.Reference, error) {
	finder := func(name string) ([]byte, error) {
		data, err := afero.ReadFile(b.fs, b.path(name))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, xerrors.Errorf(`ref "%s": %w`, name, ginternals.ErrRefNotFound)
			}
			return nil, xerrors.Errorf("could not read reference content: %w", err)
		}
		return data, nil
	}
	return ginternals.ResolveReference(name, finder)
}

// CurrentBranch returns the full name of the branch HEAD points at.
// ErrRefInvalid is returned if HEAD is detached (points directly at
// an OID rather than a branch).
func (b *Backend) CurrentBranch() (string, error) {
	finder := func(name string) ([]byte, error) {
		data, err := afero.ReadFile(b.fs, b.path(name))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, xerrors.Errorf(`ref "%s": %w`, name, ginternals.ErrRefNotFound)
			}
			return nil, xerrors.Errorf("could not read reference content: %w", err)
		}
		return data, nil
	}
	target, isSymbolic, err := ginternals.ReadImmediateTarget(ginternals.Head, finder)
	if err != nil {
		return "", xerrors.Errorf("could not read HEAD: %w", err)
	}
	if !isSymbolic {
		return "", xerrors.Errorf("HEAD is detached: %w", ginternals.ErrRefInvalid)
	}
	return target, nil
}

// WriteReference writes the given reference to disk, through the
// lockfile protocol. If the reference already exists it's overwritten
func (b *Backend) WriteReference(ref *ginternals.Reference) error {
	return b.writeReference(ref, false)
}

// WriteReferenceSafe writes the given reference to disk.
// ErrRefExists is returned if the reference already exists
func (b *Backend) WriteReferenceSafe(ref *ginternals.Reference) error {
	return b.writeReference(ref, true)
}

func (b *Backend) writeReference(ref *ginternals.Reference, failIfExists bool) error {
	if !ginternals.IsRefNameValid(ref.Name()) {
		return ginternals.ErrRefNameInvalid
	}

	var content string
	switch ref.Type() {
	case ginternals.SymbolicReference:
		content = fmt.Sprintf("ref: %s\n", ref.SymbolicTarget())
	case ginternals.OidReference:
		content = fmt.Sprintf("%s\n", ref.Target().String())
	default:
		return xerrors.Errorf("reference type %d: %w", ref.Type(), ginternals.ErrUnknownRefType)
	}

	p := b.path(ref.Name())
	if err := b.fs.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return xerrors.Errorf("could not create directory for reference %s: %w", ref.Name(), err)
	}

	lock := ginternals.NewLockfile(b.fs, p)
	if err := lock.Hold(); err != nil {
		return xerrors.Errorf("could not lock reference %s: %w", ref.Name(), err)
	}

	if failIfExists {
		exists, err := afero.Exists(b.fs, p)
		if err != nil {
			_ = lock.Rollback()
			return xerrors.Errorf("could not check if reference %s exists: %w", ref.Name(), err)
		}
		if exists {
			_ = lock.Rollback()
			return ginternals.ErrRefExists
		}
	}

	if err := lock.Write([]byte(content)); err != nil {
		_ = lock.Rollback()
		return xerrors.Errorf("could not write reference %s: %w", ref.Name(), err)
	}
	if err := lock.Commit(); err != nil {
		return xerrors.Errorf("could not persist reference %s: %w", ref.Name(), err)
	}
	return nil
}

// DeleteReference removes a reference from disk.
// ErrRefNotFound is returned if the reference doesn't exist
func (b *Backend) DeleteReference(name string) error {
	p := b.path(name)
	exists, err := afero.Exists(b.fs, p)
	if err != nil {
		return xerrors.Errorf("could not check if reference %s exists: %w", name, err)
	}
	if !exists {
		return xerrors.Errorf(`ref "%s": %w`, name, ginternals.ErrRefNotFound)
	}
	if err := b.fs.Remove(p); err != nil {
		return xerrors.Errorf("could not remove reference %s: %w", name, err)
	}
	return nil
}

// WalkReferences runs f on all the references stored under refs/heads
func (b *Backend) WalkReferences(f backend.RefWalkFunc) error {
	dir := b.path(ginternals.LocalBranchesPath())
	exists, err := afero.DirExists(b.fs, dir)
	if err != nil {
		return xerrors.Errorf("could not check %s: %w", dir, err)
	}
	if !exists {
		return nil
	}

	err = afero.Walk(b.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return xerrors.Errorf("could not compute relative path of %s: %w", path, err)
		}
		name := ginternals.LocalBranchFullName(filepath.ToSlash(rel))

		ref, err := b.Reference(name)
		if err != nil {
			return xerrors.Errorf("could not resolve reference %s: %w", name, err)
		}
		return f(ref)
	})
	if xerrors.Is(err, backend.WalkStop) {
		return nil
	}
	return err
}
