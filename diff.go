package rgit

import (
	"sort"

	"github.com/go-rgit/rgit/diff"
	"github.com/pkg/errors"
)

// binarySniffLen is how many leading bytes are scanned for a NUL byte
// to decide a file is binary, matching the convention git itself uses.
const binarySniffLen = 8000

// FileDiff is the diff of one path between two points in time.
type FileDiff struct {
	Path   string
	Binary bool
	Hunks  []diff.Hunk
}

// Diff compares the working tree against the index by default, or the
// index against HEAD's tree when staged is true.
func (r *Repository) Diff(staged bool) ([]FileDiff, error) {
	if staged {
		return r.diffIndexVsHead()
	}
	return r.diffWorkspaceVsIndex()
}

func (r *Repository) diffWorkspaceVsIndex() ([]FileDiff, error) {
	idx, err := r.dotGit.LoadIndex()
	if err != nil {
		return nil, errors.Wrap(err, "could not load index")
	}

	var out []FileDiff
	for _, e := range idx.Entries() {
		staged, err := r.dotGit.Object(e.Oid)
		if err != nil {
			return nil, errors.Wrapf(err, "could not load staged blob for %s", e.Path)
		}

		working, err := r.wt.ReadFile(e.Path)
		if err != nil {
			continue // deleted from the workspace: not this diff's concern
		}

		fd, changed := fileDiff(e.Path, staged.Bytes(), working)
		if changed {
			out = append(out, fd)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (r *Repository) diffIndexVsHead() ([]FileDiff, error) {
	idx, err := r.dotGit.LoadIndex()
	if err != nil {
		return nil, errors.Wrap(err, "could not load index")
	}
	headTree, err := r.headTreeEntries()
	if err != nil {
		return nil, errors.Wrap(err, "could not read HEAD tree")
	}

	var out []FileDiff
	for _, e := range idx.Entries() {
		headEntry, inHead := headTree[e.Path]
		if inHead && headEntry.ID == e.Oid {
			continue
		}

		var headBytes []byte
		if inHead {
			o, err := r.dotGit.Object(headEntry.ID)
			if err != nil {
				return nil, errors.Wrapf(err, "could not load HEAD blob for %s", e.Path)
			}
			headBytes = o.Bytes()
		}

		staged, err := r.dotGit.Object(e.Oid)
		if err != nil {
			return nil, errors.Wrapf(err, "could not load staged blob for %s", e.Path)
		}

		fd, changed := fileDiff(e.Path, headBytes, staged.Bytes())
		if changed {
			out = append(out, fd)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// fileDiff builds the FileDiff between a and b, reporting changed as
// false when the two sides are byte-identical.
func fileDiff(path string, a, b []byte) (fd FileDiff, changed bool) {
	if string(a) == string(b) {
		return FileDiff{}, false
	}

	fd = FileDiff{Path: path}
	if looksBinary(a) || looksBinary(b) {
		fd.Binary = true
		return fd, true
	}

	edits := diff.Edits(string(a), string(b))
	fd.Hunks = diff.Hunks(edits)
	return fd, true
}

// looksBinary reports whether data contains a NUL byte within its
// first binarySniffLen bytes.
func looksBinary(data []byte) bool {
	n := len(data)
	if n > binarySniffLen {
		n = binarySniffLen
	}
	for _, b := range data[:n] {
		if b == 0 {
			return true
		}
	}
	return false
}
