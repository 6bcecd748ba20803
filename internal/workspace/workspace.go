// Package workspace lists and reads the files of a working directory,
// honoring an ignore file the same way the rest of the engine honors
// the metadir: as a plain, lockfile-free text file at the repo root.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/ginternals/object"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// IgnoreFileName is the file, at the root of the working tree, holding
// newline-separated ignore patterns.
const IgnoreFileName = ".rgitignore"

// Entry is one file found while walking the workspace.
type Entry struct {
	Path string
	Mode object.TreeObjectMode
}

// Workspace walks a working directory, honoring ignore patterns.
type Workspace struct {
	fs   afero.Fs
	root string
}

// New returns a Workspace rooted at root, the directory a repository
// was initialized in (the parent of its metadir).
func New(fs afero.Fs, root string) *Workspace {
	return &Workspace{fs: fs, root: root}
}

// ListFiles returns every tracked-eligible file under the workspace,
// relative to root and sorted lexicographically. The metadir is always
// skipped, on top of whatever .rgitignore adds.
func (w *Workspace) ListFiles() ([]Entry, error) {
	patterns, err := w.ignorePatterns()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	err = afero.Walk(w.fs, w.root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == w.root {
			return nil
		}

		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			return xerrors.Errorf("could not compute relative path of %s: %w", path, relErr)
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if rel == ginternals.DotDirName || matchesAny(rel, patterns) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchesAny(rel, patterns) {
			return nil
		}

		mode := object.ModeFile
		if info.Mode()&0o111 != 0 {
			mode = object.ModeExecutable
		}
		entries = append(entries, Entry{Path: rel, Mode: mode})
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("could not walk workspace at %s: %w", w.root, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// ReadFile returns the content of path, relative to the workspace root.
func (w *Workspace) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(w.fs, filepath.Join(w.root, filepath.FromSlash(path)))
	if err != nil {
		return nil, xerrors.Errorf("could not read %s: %w", path, err)
	}
	return data, nil
}

func (w *Workspace) ignorePatterns() ([]string, error) {
	data, err := afero.ReadFile(w.fs, filepath.Join(w.root, IgnoreFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, xerrors.Errorf("could not read %s: %w", IgnoreFileName, err)
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, nil
}

// matchesAny reports whether rel matches one of the ignore patterns: by
// equality, as a path-segment prefix (pattern "f" also ignores
// "f/g.txt"), or as a filepath glob.
func matchesAny(rel string, patterns []string) bool {
	for _, p := range patterns {
		if rel == p || strings.HasPrefix(rel, p+"/") {
			return true
		}
		if ok, _ := filepath.Match(p, rel); ok {
			return true
		}
	}
	return false
}
