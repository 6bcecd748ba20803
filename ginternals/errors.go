package ginternals

import "errors"

// Errors returned by the object database and the index/lockfile layers.
// See the error-handling conventions for how callers are expected to
// match these with errors.Is.
var (
	// ErrObjectNotFound is returned when trying to look up an object
	// that doesn't exist in the odb
	ErrObjectNotFound = errors.New("object not found")

	// ErrObjectCorrupt is returned when a loose object's header cannot
	// be parsed or its content length doesn't match the header's size
	ErrObjectCorrupt = errors.New("object is corrupt")

	// ErrChecksumMismatch is returned when the trailing checksum of a
	// file (index, ...) doesn't match the checksum of its content
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrLockBusy is returned when trying to acquire a lock that is
	// already held by someone else
	ErrLockBusy = errors.New("unable to acquire lock, file already exists")

	// ErrLockNotHeld is returned when trying to write to or commit a
	// lock that was never successfully held
	ErrLockNotHeld = errors.New("lock is not held")

	// ErrUnknownRevision is returned when a revision expression cannot
	// be resolved to an object
	ErrUnknownRevision = errors.New("unknown revision or path not in the working tree")

	// ErrNoParent is returned when trying to resolve the parent of a
	// commit that has none
	ErrNoParent = errors.New("commit has no parent")

	// ErrInvalidBranchName is returned when a branch name doesn't pass
	// IsBranchNameValid
	ErrInvalidBranchName = errors.New("invalid branch name")

	// ErrBranchExists is returned when trying to create a branch that
	// already exists
	ErrBranchExists = errors.New("branch already exists")

	// ErrMissingAuthorConfig is returned when creating a commit without
	// the environment providing an author name and email
	ErrMissingAuthorConfig = errors.New("author identity unknown, set AUTHOR_NAME and AUTHOR_EMAIL")

	// ErrNothingToCommit is returned when trying to commit an index
	// that is identical to HEAD's tree
	ErrNothingToCommit = errors.New("nothing to commit")
)
