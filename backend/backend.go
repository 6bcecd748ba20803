// Package backend contains interfaces and implementations to store and
// retrieve data from the object database
package backend

import (
	"errors"

	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/ginternals/object"
)

// This line generates a mock of the interface using gomock
// (https://github.com/golang/mock). To regenerate the mock, you'll need
// gomock and mockgen installed, then run `go generate github.com/go-rgit/rgit/backend`
//
//go:generate mockgen -package mockbackend -destination ../internal/mocks/mockbackend/backend.go github.com/go-rgit/rgit/backend Backend

// Backend represents an object that can store and retrieve data
// from and to the object database
type Backend interface {
	// Close frees the resources held by the backend
	Close() error

	// Init initializes a repository: creates the metadir layout and
	// writes the default config
	Init() error

	// Reference returns a stored reference from its name
	Reference(name string) (*ginternals.Reference, error)
	// CurrentBranch returns the full name of the branch HEAD points
	// at, without requiring that branch to exist yet (an unborn
	// branch, right after Init and before the first commit)
	CurrentBranch() (string, error)
	// WriteReference writes the given reference to disk. If the
	// reference already exists it will be overwritten
	WriteReference(ref *ginternals.Reference) error
	// WriteReferenceSafe writes the given reference to disk.
	// ErrRefExists is returned if the reference already exists
	WriteReferenceSafe(ref *ginternals.Reference) error
	// DeleteReference removes a reference from disk.
	// ErrRefNotFound is returned if the reference doesn't exist
	DeleteReference(name string) error
	// WalkReferences runs the provided method on all the references
	// stored under refs/heads
	WalkReferences(f RefWalkFunc) error

	// Object returns the object that has the given oid
	Object(ginternals.Oid) (*object.Object, error)
	// HasObject returns whether an object exists in the odb
	HasObject(ginternals.Oid) (bool, error)
	// WriteObject adds an object to the odb. Writing an object that
	// already exists is a no-op
	WriteObject(*object.Object) (ginternals.Oid, error)
	// WalkLooseObjectIDs runs the provided method on all the loose
	// object ids
	WalkLooseObjectIDs(f OidWalkFunc) error
	// PrefixMatch returns every oid in the odb whose hex representation
	// starts with prefix, used to resolve abbreviated revisions
	PrefixMatch(prefix string) ([]ginternals.Oid, error)

	// LoadIndex reads the staging index from disk. A fresh, empty
	// index is returned if none exists yet
	LoadIndex() (*ginternals.Index, error)
	// WriteIndex persists the staging index to disk, through the
	// lockfile protocol
	WriteIndex(idx *ginternals.Index) error
}

// RefWalkFunc represents a function that will be applied on all references
// found by WalkReferences()
type RefWalkFunc = func(ref *ginternals.Reference) error

// OidWalkFunc represents a function that will be applied on all oids
// found by WalkLooseObjectIDs()
type OidWalkFunc = func(oid ginternals.Oid) error

// WalkStop is a fake error used to tell a Walk method to stop early
// without that being treated as a real failure.
var WalkStop = errors.New("stop walking") //nolint:stylecheck // intentionally not prefixed with Err, it's a sentinel, not a failure
