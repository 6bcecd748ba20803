package pathutil

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-rgit/rgit/ginternals"
	"golang.org/x/xerrors"
)

// ErrNoRepo is an error returned when no repository is found
var ErrNoRepo = errors.New("not a repository (or any of the parent directories)")

// RepoRoot returns the absolute path to the root of the working tree,
// found by walking up from the current directory looking for the
// metadir
func RepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", xerrors.Errorf("could not get current working directory: %w", err)
	}
	return RepoRootFromPath(wd)
}

// RepoRootFromPath returns the absolute path to the root of the
// working tree containing the provided directory
func RepoRootFromPath(p string) (string, error) {
	prev := ""
	for p != prev {
		info, err := os.Stat(filepath.Join(p, ginternals.DotDirName))
		if err == nil && info.IsDir() {
			return p, nil
		}

		prev = p
		p = filepath.Dir(p)
	}
	return "", ErrNoRepo
}
