package rgit

import (
	"sort"
	"strings"

	"github.com/go-rgit/rgit/backend"
	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/ginternals/object"
	"github.com/pkg/errors"
)

// treeBuilder turns the flat, path-sorted view of the index into a
// nested hierarchy of tree objects, writing children before the
// parents that reference them.
type treeBuilder struct {
	backend backend.Backend
}

// pathEntry is one leaf (file) staged in the index, as seen by the
// tree builder.
type pathEntry struct {
	path string
	oid  ginternals.Oid
	mode object.TreeObjectMode
}

// Build writes the nested tree for entries and returns the OID of its
// root. entries need not be pre-sorted.
func (tb treeBuilder) Build(entries []pathEntry) (ginternals.Oid, error) {
	sorted := make([]pathEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].path < sorted[j].path })

	root, err := tb.buildLevel(sorted)
	if err != nil {
		return ginternals.NullOid, err
	}
	return tb.write(root)
}

// buildLevel partitions entries by their top-level path component and
// returns the tree entries for this level. Directory groups are
// recursed into and written immediately so the returned entry can
// reference a real, already-persisted OID.
func (tb treeBuilder) buildLevel(entries []pathEntry) ([]object.TreeEntry, error) {
	type group struct {
		name  string
		files []pathEntry
		dirs  []pathEntry
	}

	order := []string{}
	groups := map[string]*group{}

	for _, e := range entries {
		name, rest, isDir := splitTop(e.path)
		g, ok := groups[name]
		if !ok {
			g = &group{name: name}
			groups[name] = g
			order = append(order, name)
		}
		if isDir {
			g.dirs = append(g.dirs, pathEntry{path: rest, oid: e.oid, mode: e.mode})
		} else {
			g.files = append(g.files, e)
		}
	}

	out := make([]object.TreeEntry, 0, len(order))
	for _, name := range order {
		g := groups[name]
		switch {
		case len(g.dirs) == 0:
			if len(g.files) != 1 {
				return nil, errors.Errorf("path %q staged more than once", name)
			}
			f := g.files[0]
			out = append(out, object.TreeEntry{Path: name, ID: f.oid, Mode: f.mode})
		default:
			children, err := tb.buildLevel(g.dirs)
			if err != nil {
				return nil, err
			}
			childOid, err := tb.write(children)
			if err != nil {
				return nil, err
			}
			out = append(out, object.TreeEntry{Path: name, ID: childOid, Mode: object.ModeDirectory})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// write persists a tree made of entries and returns its OID.
func (tb treeBuilder) write(entries []object.TreeEntry) (ginternals.Oid, error) {
	tree := object.NewTree(entries)
	oid, err := tb.backend.WriteObject(tree.ToObject())
	if err != nil {
		return ginternals.NullOid, errors.Wrap(err, "could not write tree object")
	}
	return oid, nil
}

// splitTop splits path into its first component and the remainder.
// isDir is true when there is more than one component left, meaning
// name is a directory, not the final file.
func splitTop(path string) (name, rest string, isDir bool) {
	i := strings.IndexByte(path, '/')
	if i < 0 {
		return path, "", false
	}
	return path[:i], path[i+1:], true
}
