package rgit

import (
	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/ginternals/object"
	"github.com/pkg/errors"
)

// Resolve turns a revision expression (e.g. "@", "HEAD^", "main~2") into
// the OID it points at.
func (r *Repository) Resolve(expr string) (ginternals.Oid, error) {
	return ginternals.ResolveRevision(expr, r.resolveRevisionBase, r.parentOf)
}

// resolveRevisionBase implements ginternals.ResolveBaseFunc: a branch
// lookup, falling back to matching an object prefix.
func (r *Repository) resolveRevisionBase(name string) (ginternals.Oid, error) {
	if ginternals.IsCurrentBranchAlias(name) {
		branch, err := r.dotGit.CurrentBranch()
		if err != nil {
			return ginternals.NullOid, errors.Wrap(err, "could not determine current branch")
		}
		name = ginternals.LocalBranchShortName(branch)
	}

	ref, err := r.dotGit.Reference(ginternals.LocalBranchFullName(name))
	if err == nil {
		return ref.Target(), nil
	}
	if !errors.Is(err, ginternals.ErrRefNotFound) {
		return ginternals.NullOid, errors.Wrapf(err, "could not read branch %s", name)
	}

	matches, matchErr := r.dotGit.PrefixMatch(name)
	if matchErr != nil {
		return ginternals.NullOid, errors.Wrapf(matchErr, "could not match prefix %s", name)
	}
	if len(matches) != 1 {
		return ginternals.NullOid, errors.Wrapf(ginternals.ErrUnknownRevision, "%s", name)
	}
	return matches[0], nil
}

// parentOf implements ginternals.ParentOfFunc by loading the commit
// and returning its first parent.
func (r *Repository) parentOf(oid ginternals.Oid) (ginternals.Oid, bool, error) {
	o, err := r.dotGit.Object(oid)
	if err != nil {
		return ginternals.NullOid, false, errors.Wrapf(err, "could not load %s", oid.String())
	}
	commit, err := object.NewCommitFromObject(o)
	if err != nil {
		return ginternals.NullOid, false, errors.Wrapf(err, "%s is not a commit", oid.String())
	}
	parents := commit.ParentIDs()
	if len(parents) == 0 {
		return ginternals.NullOid, false, nil
	}
	return parents[0], true, nil
}
