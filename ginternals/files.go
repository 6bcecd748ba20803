package ginternals

import (
	"path"
	"path/filepath"
	"strings"
)

// DotDirName is the name of the directory storing all the repository
// metadata, at the root of the working tree
const DotDirName = ".rgit"

// .rgit/ files and directories.
// Ref paths are kept in unix format since they must be stored this way;
// the backend converts them to the host's path format when needed.
const (
	refsDirName      = "refs"
	refsHeadsRelPath = refsDirName + "/heads"

	// ObjectsDirName is the name of the directory containing the loose
	// objects, relative to the metadir
	ObjectsDirName = "objects"
	// ConfigFileName is the name of the repository's config file
	ConfigFileName = "config"
	// DescriptionFileName is the name of the repository's description file
	DescriptionFileName = "description"
	// IndexFileName is the name of the staging index file
	IndexFileName = "index"
)

// LocalBranchFullName returns the full name of branch
// ex. for `main` returns `refs/heads/main`
func LocalBranchFullName(shortName string) string {
	return path.Join(refsHeadsRelPath, shortName)
}

// LocalBranchShortName returns the short name of a branch
// ex. for `refs/heads/main` returns `main`
func LocalBranchShortName(fullName string) string {
	return strings.TrimPrefix(fullName, refsHeadsRelPath+"/")
}

// RefsPath returns the path to the directory that contains all the refs,
// relative to the metadir root
func RefsPath() string {
	return refsDirName
}

// LocalBranchesPath returns the path to the directory containing the
// local branches, relative to the metadir root
func LocalBranchesPath() string {
	return filepath.Join(RefsPath(), "heads")
}

// ObjectsPath returns the path to the directory that contains the loose
// objects, relative to the metadir root
func ObjectsPath() string {
	return ObjectsDirName
}

// LooseObjectPath returns the path of a loose object, relative to the
// metadir root.
// Path is objects/first_2_chars_of_sha/remaining_chars_of_sha
//
// Ex. path of fcfe68a0e44e04bd7fd564fc0b75f1ae457e18b3 is:
// objects/fc/fe68a0e44e04bd7fd564fc0b75f1ae457e18b3
func LooseObjectPath(sha string) string {
	return filepath.Join(ObjectsPath(), sha[:2], sha[2:])
}
