package fsbackend

import (
	"compress/zlib"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-rgit/rgit/backend"
	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/ginternals/object"
	"github.com/go-rgit/rgit/internal/errutil"
	"github.com/go-rgit/rgit/internal/readutil"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Object returns the object that has the given oid.
// This method can be called concurrently
func (b *Backend) Object(oid ginternals.Oid) (*object.Object, error) {
	key := oid[:]
	b.objectMu.Lock(key)
	defer b.objectMu.Unlock(key)

	return b.objectUnsafe(oid)
}

func (b *Backend) objectUnsafe(oid ginternals.Oid) (*object.Object, error) {
	if cached, found := b.cache.Get(oid); found {
		if o, valid := cached.(*object.Object); valid {
			return o, nil
		}
	}

	o, err := b.looseObject(oid)
	if err != nil {
		return nil, err
	}
	b.cache.Add(oid, o)
	return o, nil
}

// looseObjectPath returns the absolute path of a loose object
func (b *Backend) looseObjectPath(sha string) string {
	return b.path(ginternals.LooseObjectPath(sha))
}

// looseObject reads and decompresses the loose object matching oid.
// The format of an object is an ascii-encoded type, a space, an
// ascii-encoded length, a NUL char, then the object's content.
func (b *Backend) looseObject(oid ginternals.Oid) (o *object.Object, err error) {
	strOid := oid.String()
	p := b.looseObjectPath(strOid)
	f, err := b.fs.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.Errorf("object %s: %w", strOid, ginternals.ErrObjectNotFound)
		}
		return nil, xerrors.Errorf("could not open object %s at path %s: %w", strOid, p, err)
	}
	defer errutil.Close(f, &err)

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, xerrors.Errorf("could not decompress object %s at path %s: %w", strOid, p, err)
	}
	defer errutil.Close(zr, &err)

	buff, err := ioutil.ReadAll(zr)
	if err != nil {
		return nil, xerrors.Errorf("could not read object %s at path %s: %w", strOid, p, err)
	}

	pos := 0
	typ := readutil.ReadTo(buff, ' ')
	if typ == nil {
		return nil, xerrors.Errorf("could not find type for object %s at path %s: %w", strOid, p, ginternals.ErrObjectCorrupt)
	}
	oType, err := object.NewTypeFromString(string(typ))
	if err != nil {
		return nil, xerrors.Errorf("unsupported type %s for object %s at path %s", string(typ), strOid, p)
	}
	pos += len(typ) + 1 // +1 for the space

	size := readutil.ReadTo(buff[pos:], 0)
	if size == nil {
		return nil, xerrors.Errorf("could not find size for object %s at path %s: %w", strOid, p, ginternals.ErrObjectCorrupt)
	}
	oSize, err := strconv.Atoi(string(size))
	if err != nil {
		return nil, xerrors.Errorf("invalid size %s for object %s at path %s: %w", size, strOid, p, err)
	}
	pos += len(size) + 1 // +1 for the NUL char
	content := buff[pos:]

	if len(content) != oSize {
		return nil, xerrors.Errorf("object %s marked as size %d, but has %d: %w", strOid, oSize, len(content), ginternals.ErrObjectCorrupt)
	}

	return object.New(oType, content), nil
}

// HasObject returns whether an object exists in the odb.
// This method can be called concurrently
func (b *Backend) HasObject(oid ginternals.Oid) (bool, error) {
	key := oid[:]
	b.objectMu.Lock(key)
	defer b.objectMu.Unlock(key)

	return b.hasObjectUnsafe(oid)
}

func (b *Backend) hasObjectUnsafe(oid ginternals.Oid) (bool, error) {
	_, err := b.objectUnsafe(oid)
	if err == nil {
		return true, nil
	}
	if xerrors.Is(err, ginternals.ErrObjectNotFound) {
		return false, nil
	}
	return false, xerrors.Errorf("could not get object: %w", err)
}

// WriteObject adds an object to the odb, atomically. Writing an
// object that already exists is a no-op.
// This method can be called concurrently.
func (b *Backend) WriteObject(o *object.Object) (ginternals.Oid, error) {
	data, err := o.Compress()
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not compress object: %w", err)
	}

	oid := o.ID()
	b.objectMu.Lock(oid[:])
	defer b.objectMu.Unlock(oid[:])

	found, err := b.hasObjectUnsafe(oid)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not check if object %s already exists: %w", oid.String(), err)
	}
	if found {
		return oid, nil
	}

	sha := oid.String()
	p := b.looseObjectPath(sha)
	dest := filepath.Dir(p)
	if err = b.fs.MkdirAll(dest, 0o750); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not create destination directory %s: %w", dest, err)
	}

	// Objects are written to a temp file in the same directory first,
	// then renamed into place: a reader can never observe a partially
	// written object.
	tmp, err := afero.TempFile(b.fs, dest, "obj-")
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not create temp file for object %s: %w", sha, err)
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = b.fs.Remove(tmpName)
		return ginternals.NullOid, xerrors.Errorf("could not write object %s: %w", sha, err)
	}
	if err = tmp.Close(); err != nil {
		_ = b.fs.Remove(tmpName)
		return ginternals.NullOid, xerrors.Errorf("could not close temp file for object %s: %w", sha, err)
	}
	// Objects are read-only once written
	if err = b.fs.Chmod(tmpName, 0o444); err != nil {
		_ = b.fs.Remove(tmpName)
		return ginternals.NullOid, xerrors.Errorf("could not set permissions on object %s: %w", sha, err)
	}
	if err = b.fs.Rename(tmpName, p); err != nil {
		_ = b.fs.Remove(tmpName)
		return ginternals.NullOid, xerrors.Errorf("could not persist object %s at path %s: %w", sha, p, err)
	}

	b.cache.Add(oid, o)
	return oid, nil
}

// WalkLooseObjectIDs runs f on all the oids found under the objects
// directory
func (b *Backend) WalkLooseObjectIDs(f backend.OidWalkFunc) error {
	root := b.path(ginternals.ObjectsPath())
	exists, err := afero.DirExists(b.fs, root)
	if err != nil {
		return xerrors.Errorf("could not check %s: %w", root, err)
	}
	if !exists {
		return nil
	}

	err = afero.Walk(b.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if info.IsDir() {
			if !isLooseObjectDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		prefix := filepath.Base(filepath.Dir(path))
		if !isLooseObjectDir(prefix) || filepath.Ext(info.Name()) != "" {
			return nil
		}

		oid, err := ginternals.NewOidFromStr(prefix + info.Name())
		if err != nil {
			return xerrors.Errorf("could not parse oid from %s: %w", path, err)
		}
		return f(oid)
	})
	if xerrors.Is(err, backend.WalkStop) {
		return nil
	}
	return err
}

// PrefixMatch returns every oid in the odb whose hex representation
// starts with prefix
func (b *Backend) PrefixMatch(prefix string) ([]ginternals.Oid, error) {
	var matches []ginternals.Oid
	err := b.WalkLooseObjectIDs(func(oid ginternals.Oid) error {
		if strings.HasPrefix(oid.String(), prefix) {
			matches = append(matches, oid)
		}
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("could not walk objects to match prefix %s: %w", prefix, err)
	}
	return matches, nil
}

// isLooseObjectDir checks if a directory name is a valid loose-object
// prefix, anything between "00" and "ff"
func isLooseObjectDir(name string) bool {
	if len(name) != 2 {
		return false
	}
	n, err := strconv.ParseInt(name, 16, 64)
	return err == nil && n >= 0x00 && n <= 0xff
}
