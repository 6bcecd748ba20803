package rgit

import (
	"sort"

	"github.com/go-rgit/rgit/ginternals"
	"github.com/pkg/errors"
)

// Branch creates a new branch called name, pointing at startRev (or at
// the current branch's tip if startRev is empty).
func (r *Repository) Branch(name, startRev string) error {
	if !ginternals.IsBranchNameValid(name) {
		return errors.Wrapf(ginternals.ErrInvalidBranchName, "%q", name)
	}

	if startRev == "" {
		startRev = "@"
	}
	oid, err := r.Resolve(startRev)
	if err != nil {
		return err
	}

	ref := ginternals.NewReference(ginternals.LocalBranchFullName(name), oid)
	if err := r.dotGit.WriteReferenceSafe(ref); err != nil {
		if errors.Is(err, ginternals.ErrRefExists) {
			return errors.Wrapf(ginternals.ErrBranchExists, "%q", name)
		}
		return errors.Wrapf(err, "could not create branch %q", name)
	}
	return nil
}

// BranchInfo is one entry in a branch listing.
type BranchInfo struct {
	Name    string
	Current bool
}

// ListBranches returns every local branch, sorted by name, marking
// which one HEAD currently points at.
func (r *Repository) ListBranches() ([]BranchInfo, error) {
	current, err := r.dotGit.CurrentBranch()
	if err != nil {
		return nil, errors.Wrap(err, "could not determine current branch")
	}

	var out []BranchInfo
	err = r.dotGit.WalkReferences(func(ref *ginternals.Reference) error {
		out = append(out, BranchInfo{
			Name:    ginternals.LocalBranchShortName(ref.Name()),
			Current: ref.Name() == current,
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not list branches")
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteBranch removes a local branch. ErrUnknownRevision is returned
// if the branch doesn't exist.
func (r *Repository) DeleteBranch(name string) error {
	err := r.dotGit.DeleteReference(ginternals.LocalBranchFullName(name))
	if errors.Is(err, ginternals.ErrRefNotFound) {
		return errors.Wrapf(ginternals.ErrUnknownRevision, "%q", name)
	}
	return err
}
