// Package rgit is the porcelain layer of the engine: it ties the
// object database, the staging index, references and the working
// tree together into the operations a user actually runs (init, add,
// commit, status, diff, branch).
package rgit

import (
	"path/filepath"

	"github.com/go-rgit/rgit/backend"
	"github.com/go-rgit/rgit/backend/fsbackend"
	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/internal/workspace"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ErrRepositoryNotExist is returned when opening a path that isn't a
// repository.
var ErrRepositoryNotExist = errors.New("repository does not exist")

// Repository represents a local, content-addressed source-control
// repository: the metadir holding the object database, references and
// index, plus the working tree it tracks.
type Repository struct {
	dotGitPath string
	dotGit     backend.Backend
	repoRoot   string
	wt         *workspace.Workspace
	fs         afero.Fs
}

// InitOptions contains all the optional data used to initialize a
// repository.
type InitOptions struct {
	// Backend is the underlying store used to init the repository and
	// interact with the odb. Defaults to a filesystem-backed store.
	Backend backend.Backend
	// Fs is the filesystem used to read the working tree. Defaults to
	// the OS filesystem.
	Fs afero.Fs
}

// InitRepository creates a new repository by creating the metadir
// (.rgit) inside repoPath.
func InitRepository(repoPath string) (*Repository, error) {
	return InitRepositoryWithOptions(repoPath, InitOptions{})
}

// InitRepositoryWithOptions creates a new repository by creating the
// metadir (.rgit) inside repoPath.
func InitRepositoryWithOptions(repoPath string, opts InitOptions) (*Repository, error) {
	r := newRepository(repoPath, opts.Backend, opts.Fs)

	if err := r.dotGit.Init(); err != nil {
		return nil, errors.Wrap(err, "could not initialize repository")
	}
	return r, nil
}

// OpenOptions contains all the optional data used to open an existing
// repository.
type OpenOptions struct {
	Backend backend.Backend
	Fs      afero.Fs
}

// OpenRepository loads an existing repository rooted at repoPath.
func OpenRepository(repoPath string) (*Repository, error) {
	return OpenRepositoryWithOptions(repoPath, OpenOptions{})
}

// OpenRepositoryWithOptions loads an existing repository rooted at
// repoPath.
func OpenRepositoryWithOptions(repoPath string, opts OpenOptions) (*Repository, error) {
	r := newRepository(repoPath, opts.Backend, opts.Fs)

	// CurrentBranch reads HEAD's immediate target without requiring it
	// to resolve to a commit, so this also succeeds right after init,
	// before the first commit exists (an unborn branch).
	if _, err := r.dotGit.CurrentBranch(); err != nil {
		return nil, ErrRepositoryNotExist
	}
	return r, nil
}

func newRepository(repoPath string, b backend.Backend, fs afero.Fs) *Repository {
	dotGitPath := filepath.Join(repoPath, ginternals.DotDirName)

	if fs == nil {
		fs = afero.NewOsFs()
	}
	if b == nil {
		b = fsbackend.New(fs, dotGitPath)
	}

	return &Repository{
		repoRoot:   repoPath,
		dotGitPath: dotGitPath,
		dotGit:     b,
		wt:         workspace.New(fs, repoPath),
		fs:         fs,
	}
}

// Backend returns the object database/reference/index store backing
// the repository.
func (r *Repository) Backend() backend.Backend {
	return r.dotGit
}

// Root returns the absolute path to the working tree root (the
// parent of the metadir).
func (r *Repository) Root() string {
	return r.repoRoot
}

// Workspace returns the working-tree walker used to list and read
// tracked-eligible files.
func (r *Repository) Workspace() *workspace.Workspace {
	return r.wt
}

// Close releases the resources held by the repository's backend.
func (r *Repository) Close() error {
	return r.dotGit.Close()
}
