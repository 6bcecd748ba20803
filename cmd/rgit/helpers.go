package main

import (
	"os"

	"github.com/go-rgit/rgit"
	"github.com/go-rgit/rgit/internal/pathutil"
)

// openRepository opens the repository that contains the current
// working directory.
func openRepository() (*rgit.Repository, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := pathutil.RepoRootFromPath(wd)
	if err != nil {
		return nil, err
	}
	return rgit.OpenRepository(root)
}
