package rgit

import (
	"bytes"
	"sort"

	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/ginternals/object"
	"github.com/pkg/errors"
)

// StatusCode classifies how a path differs between the working tree,
// the index and HEAD's tree.
type StatusCode int8

const (
	// StagedNew is a path present in the index but not in HEAD's tree.
	StagedNew StatusCode = iota
	// StagedModified is a path present in both, with different content.
	StagedModified
	// StagedDeleted is a path present in HEAD's tree but removed from
	// the index.
	StagedDeleted
	// Untracked is a path present in the working tree but never staged.
	Untracked
	// UnstagedModified is a path whose working-tree content or mode no
	// longer matches what's staged.
	UnstagedModified
	// UnstagedDeleted is a path staged but missing from the working tree.
	UnstagedDeleted
)

// String renders the status code the way the CLI prints it.
func (c StatusCode) String() string {
	switch c {
	case StagedNew:
		return "staged new"
	case StagedModified:
		return "staged modified"
	case StagedDeleted:
		return "staged deleted"
	case Untracked:
		return "untracked"
	case UnstagedModified:
		return "unstaged modified"
	case UnstagedDeleted:
		return "unstaged deleted"
	default:
		return "unknown"
	}
}

// StatusEntry is one path's classification.
type StatusEntry struct {
	Path string
	Code StatusCode
}

// Status compares the working tree, the index and HEAD's tree, and
// returns every path that differs between any two of them. Staged
// categories are reported first, each group sorted by path.
func (r *Repository) Status() ([]StatusEntry, error) {
	idx, err := r.dotGit.LoadIndex()
	if err != nil {
		return nil, errors.Wrap(err, "could not load index")
	}
	idxMap := map[string]ginternals.IndexEntry{}
	for _, e := range idx.Entries() {
		idxMap[e.Path] = e
	}

	headTree, err := r.headTreeEntries()
	if err != nil {
		return nil, errors.Wrap(err, "could not read HEAD tree")
	}

	files, err := r.wt.ListFiles()
	if err != nil {
		return nil, errors.Wrap(err, "could not list workspace files")
	}
	wsMap := map[string]object.TreeObjectMode{}
	for _, f := range files {
		wsMap[f.Path] = f.Mode
	}

	var staged, unstaged []StatusEntry

	for path, e := range idxMap {
		headEntry, inHead := headTree[path]
		switch {
		case !inHead:
			staged = append(staged, StatusEntry{Path: path, Code: StagedNew})
		case headEntry.ID != e.Oid:
			staged = append(staged, StatusEntry{Path: path, Code: StagedModified})
		}
	}
	for path := range headTree {
		if _, ok := idxMap[path]; !ok {
			staged = append(staged, StatusEntry{Path: path, Code: StagedDeleted})
		}
	}

	for path := range wsMap {
		if _, ok := idxMap[path]; !ok {
			unstaged = append(unstaged, StatusEntry{Path: path, Code: Untracked})
		}
	}
	for path, e := range idxMap {
		mode, inWorkspace := wsMap[path]
		if !inWorkspace {
			unstaged = append(unstaged, StatusEntry{Path: path, Code: UnstagedDeleted})
			continue
		}
		if uint32(mode) != e.Mode { //nolint:gosec // modes are small, fixed constants
			unstaged = append(unstaged, StatusEntry{Path: path, Code: UnstagedModified})
			continue
		}
		content, err := r.wt.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read %s", path)
		}
		blobObj, err := r.dotGit.Object(e.Oid)
		if err != nil {
			return nil, errors.Wrapf(err, "could not load staged blob for %s", path)
		}
		if !bytes.Equal(blobObj.Bytes(), content) {
			unstaged = append(unstaged, StatusEntry{Path: path, Code: UnstagedModified})
		}
	}

	sortByCategory(staged, stagedOrder)
	sortByCategory(unstaged, unstagedOrder)

	return append(staged, unstaged...), nil
}

var stagedOrder = map[StatusCode]int{StagedNew: 0, StagedModified: 1, StagedDeleted: 2}
var unstagedOrder = map[StatusCode]int{Untracked: 0, UnstagedModified: 1, UnstagedDeleted: 2}

// sortByCategory sorts entries first by their category rank (per
// order), then by path within each category.
func sortByCategory(entries []StatusEntry, order map[StatusCode]int) {
	sort.Slice(entries, func(i, j int) bool {
		oi, oj := order[entries[i].Code], order[entries[j].Code]
		if oi != oj {
			return oi < oj
		}
		return entries[i].Path < entries[j].Path
	})
}

// headTreeEntries returns a flat path -> tree-entry map for the commit
// the current branch points at, or an empty map if the branch has no
// commits yet.
func (r *Repository) headTreeEntries() (map[string]object.TreeEntry, error) {
	oid, err := r.Resolve("@")
	if err != nil {
		if errors.Is(err, ginternals.ErrUnknownRevision) {
			return map[string]object.TreeEntry{}, nil
		}
		return nil, err
	}

	o, err := r.dotGit.Object(oid)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load commit %s", oid.String())
	}
	commit, err := object.NewCommitFromObject(o)
	if err != nil {
		return nil, errors.Wrapf(err, "%s is not a commit", oid.String())
	}
	return r.flattenTree(commit.TreeID(), "")
}

// flattenTree recursively walks a tree object and returns a flat
// path -> entry map, with nested paths joined by "/".
func (r *Repository) flattenTree(oid ginternals.Oid, prefix string) (map[string]object.TreeEntry, error) {
	o, err := r.dotGit.Object(oid)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load tree %s", oid.String())
	}
	tree, err := object.NewTreeFromObject(o)
	if err != nil {
		return nil, errors.Wrapf(err, "%s is not a tree", oid.String())
	}

	out := map[string]object.TreeEntry{}
	for _, e := range tree.Entries() {
		path := e.Path
		if prefix != "" {
			path = prefix + "/" + path
		}
		if e.Mode != object.ModeDirectory {
			out[path] = e
			continue
		}
		sub, err := r.flattenTree(e.ID, path)
		if err != nil {
			return nil, err
		}
		for k, v := range sub {
			out[k] = v
		}
	}
	return out, nil
}
