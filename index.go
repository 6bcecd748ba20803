package rgit

import (
	"strings"

	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/ginternals/object"
	"github.com/pkg/errors"
)

// ErrEmptyAdd is returned when none of the paths given to Add match
// any file in the workspace (e.g. an empty directory).
var ErrEmptyAdd = errors.New("nothing to add: no files matched the given paths")

// Add stages the given paths into the index. A path may name a file
// directly or a directory, in which case every file under it is
// staged. Paths are relative to the repository root.
func (r *Repository) Add(paths []string) error {
	idx, err := r.dotGit.LoadIndex()
	if err != nil {
		return errors.Wrap(err, "could not load index")
	}

	files, err := r.wt.ListFiles()
	if err != nil {
		return errors.Wrap(err, "could not list workspace files")
	}

	staged := 0
	for _, f := range files {
		if !matchesAnyPath(f.Path, paths) {
			continue
		}

		content, err := r.wt.ReadFile(f.Path)
		if err != nil {
			return errors.Wrapf(err, "could not read %s", f.Path)
		}

		blob := object.New(object.TypeBlob, content)
		oid, err := r.dotGit.WriteObject(blob)
		if err != nil {
			return errors.Wrapf(err, "could not write blob for %s", f.Path)
		}

		idx.Add(ginternals.IndexEntry{
			Mode: uint32(f.Mode),
			Size: uint32(len(content)), //nolint:gosec // file sizes never approach overflow
			Oid:  oid,
			Path: f.Path,
		})
		staged++
	}

	if staged == 0 {
		return ErrEmptyAdd
	}

	if err := r.dotGit.WriteIndex(idx); err != nil {
		return errors.Wrap(err, "could not write index")
	}
	return nil
}

// matchesAnyPath reports whether rel is, or is contained in, one of
// the requested paths.
func matchesAnyPath(rel string, paths []string) bool {
	for _, p := range paths {
		p = strings.TrimSuffix(p, "/")
		if p == "." || rel == p || strings.HasPrefix(rel, p+"/") {
			return true
		}
	}
	return false
}
