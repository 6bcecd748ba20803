package rgit

import (
	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/ginternals/object"
	"github.com/go-rgit/rgit/internal/env"
	"github.com/pkg/errors"
)

// Commit builds a tree from the current index, and records it as a
// new commit on the current branch, with the previous tip (if any) as
// its parent.
func (r *Repository) Commit(message string) error {
	idx, err := r.dotGit.LoadIndex()
	if err != nil {
		return errors.Wrap(err, "could not load index")
	}

	branch, err := r.dotGit.CurrentBranch()
	if err != nil {
		return errors.Wrap(err, "could not determine current branch")
	}

	entries := make([]pathEntry, 0, len(idx.Entries()))
	for _, e := range idx.Entries() {
		entries = append(entries, pathEntry{path: e.Path, oid: e.Oid, mode: object.TreeObjectMode(e.Mode)})
	}

	tb := treeBuilder{backend: r.dotGit}
	treeID, err := tb.Build(entries)
	if err != nil {
		return err
	}

	var parent *ginternals.Oid
	ref, err := r.dotGit.Reference(branch)
	switch {
	case err == nil:
		oid := ref.Target()
		parent = &oid
	case errors.Is(err, ginternals.ErrRefNotFound):
		// first commit of an unborn branch: no parent
	default:
		return errors.Wrapf(err, "could not read %s", branch)
	}

	if parent != nil {
		parentObj, err := r.dotGit.Object(*parent)
		if err != nil {
			return errors.Wrap(err, "could not load parent commit")
		}
		parentCommit, err := object.NewCommitFromObject(parentObj)
		if err != nil {
			return errors.Wrap(err, "could not parse parent commit")
		}
		if parentCommit.TreeID() == treeID {
			return ginternals.ErrNothingToCommit
		}
	}

	author, err := authorFromEnv()
	if err != nil {
		return err
	}

	commit := object.NewCommit(treeID, author, &object.CommitOptions{Message: message, Parent: parent})
	commitOid, err := r.dotGit.WriteObject(commit.ToObject())
	if err != nil {
		return errors.Wrap(err, "could not write commit object")
	}

	if err := r.dotGit.WriteReference(ginternals.NewReference(branch, commitOid)); err != nil {
		return errors.Wrapf(err, "could not update %s", branch)
	}
	return nil
}

// authorFromEnv reads the author identity from the environment,
// failing fast if either half is missing rather than falling back to
// a guessed identity.
func authorFromEnv() (object.Signature, error) {
	e := env.NewFromOs()
	if !e.Has("AUTHOR_NAME") || !e.Has("AUTHOR_EMAIL") {
		return object.Signature{}, ginternals.ErrMissingAuthorConfig
	}
	return object.NewSignature(e.Get("AUTHOR_NAME"), e.Get("AUTHOR_EMAIL")), nil
}
