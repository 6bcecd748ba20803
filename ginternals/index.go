// Package ginternals contains the lower-level primitives of the
// content-addressed store: object ids, references, the lockfile
// protocol and the binary staging index.
package ginternals

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // sha1 is the index's checksum algorithm
	"encoding/binary"
	"sort"
	"strings"

	"golang.org/x/xerrors"
)

// index file signature and supported version, per the DIRC format
const (
	indexSignature      = "DIRC"
	indexSupportedVersion = uint32(2)
	indexHeaderSize       = 12
	indexEntryMinSize     = 62 // fixed fields, before the variable-length path
	indexChecksumSize     = 20
)

// ErrIndexCorrupt is returned when the index file's signature, version
// or structure can't be parsed
var ErrIndexCorrupt = xerrors.New("index file is corrupt")

// ErrIndexVersionUnsupported is returned when the index file declares
// a version this implementation doesn't understand
var ErrIndexVersionUnsupported = xerrors.New("unsupported index version")

// IndexEntry represents one tracked path staged in the index
type IndexEntry struct {
	CTimeSec  uint32
	CTimeNano uint32
	MTimeSec  uint32
	MTimeNano uint32
	Dev       uint32
	Ino       uint32
	Mode      uint32
	UID       uint32
	GID       uint32
	Size      uint32
	Oid       Oid
	Path      string
}

// flags returns the 16-bit flags field: low 12 bits hold
// min(len(path), 0xFFF); the rest is reserved and left at 0.
func (e IndexEntry) flags() uint16 {
	l := len(e.Path)
	if l > 0xFFF {
		l = 0xFFF
	}
	return uint16(l) //nolint:gosec // l is capped above
}

// Index represents the in-memory view of the binary staging file.
// It is not safe for concurrent use; writes to disk go through the
// backend's WriteIndex, which holds the index lockfile while writing.
type Index struct {
	entries map[string]IndexEntry
	changed bool
}

// NewIndex returns an empty Index
func NewIndex() *Index {
	return &Index{
		entries: map[string]IndexEntry{},
	}
}

// Entries returns a copy of the entries, sorted by path
func (idx *Index) Entries() []IndexEntry {
	out := make([]IndexEntry, 0, len(idx.entries))
	for _, e := range idx.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

// Get returns the entry for a path, if tracked
func (idx *Index) Get(path string) (IndexEntry, bool) {
	e, ok := idx.entries[path]
	return e, ok
}

// Changed returns whether the index has unwritten modifications
func (idx *Index) Changed() bool {
	return idx.changed
}

// Add inserts or replaces the entry for path. Any existing entry whose
// path is a directory-prefix relationship with path (in either
// direction) is evicted first, mirroring how a file can replace a
// directory and vice versa.
func (idx *Index) Add(e IndexEntry) {
	idx.discardConflicts(e.Path)
	idx.entries[e.Path] = e
	idx.changed = true
}

// Remove deletes the entry for path, if any
func (idx *Index) Remove(path string) {
	if _, ok := idx.entries[path]; ok {
		delete(idx.entries, path)
		idx.changed = true
	}
}

// discardConflicts removes any existing entry that can no longer
// co-exist with path: an existing file at a path that is now a parent
// directory of path, or an existing file under path now that path
// itself is being staged as a file.
func (idx *Index) discardConflicts(path string) {
	for p := range idx.entries {
		if p == path {
			continue
		}
		if strings.HasPrefix(p, path+"/") || strings.HasPrefix(path, p+"/") {
			delete(idx.entries, p)
		}
	}
}

// Marshal serializes the index to the DIRC binary format: signature,
// version, entry count, sorted entries, trailing SHA-1 checksum.
func (idx *Index) Marshal() []byte {
	buf := new(bytes.Buffer)
	buf.WriteString(indexSignature)
	writeUint32(buf, indexSupportedVersion)

	entries := idx.Entries()
	writeUint32(buf, uint32(len(entries))) //nolint:gosec // entry counts never approach overflow

	for _, e := range entries {
		buf.Write(marshalEntry(e))
	}

	sum := sha1.Sum(buf.Bytes()) //nolint:gosec
	buf.Write(sum[:])
	return buf.Bytes()
}

func marshalEntry(e IndexEntry) []byte {
	buf := new(bytes.Buffer)
	writeUint32(buf, e.CTimeSec)
	writeUint32(buf, e.CTimeNano)
	writeUint32(buf, e.MTimeSec)
	writeUint32(buf, e.MTimeNano)
	writeUint32(buf, e.Dev)
	writeUint32(buf, e.Ino)
	writeUint32(buf, e.Mode)
	writeUint32(buf, e.UID)
	writeUint32(buf, e.GID)
	writeUint32(buf, e.Size)
	buf.Write(e.Oid.Bytes())
	if err := binary.Write(buf, binary.BigEndian, e.flags()); err != nil {
		panic(err) // bytes.Buffer writes never fail
	}
	buf.WriteString(e.Path)

	// Padding rule: if the entry is already a multiple of 8 AND already
	// ends in a NUL, no extra padding is added. Otherwise pad with NULs
	// up to the next multiple of 8 (at least one NUL byte).
	data := buf.Bytes()
	if len(data)%8 == 0 && data[len(data)-1] == 0 {
		return data
	}
	padded := (len(data)/8 + 1) * 8
	out := make([]byte, padded)
	copy(out, data)
	return out
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// Unmarshal populates the index from the DIRC binary format,
// replacing any entries currently held. It verifies the signature,
// the version, and the trailing checksum.
func (idx *Index) Unmarshal(data []byte) error {
	if len(data) < indexHeaderSize+indexChecksumSize {
		return xerrors.Errorf("index too small: %w", ErrIndexCorrupt)
	}

	body := data[:len(data)-indexChecksumSize]
	wantSum := data[len(data)-indexChecksumSize:]
	gotSum := sha1.Sum(body) //nolint:gosec
	if !bytes.Equal(gotSum[:], wantSum) {
		return xerrors.Errorf("index checksum: %w", ErrChecksumMismatch)
	}

	if string(body[0:4]) != indexSignature {
		return xerrors.Errorf("bad signature %q: %w", body[0:4], ErrIndexCorrupt)
	}
	version := binary.BigEndian.Uint32(body[4:8])
	if version != indexSupportedVersion {
		return xerrors.Errorf("version %d: %w", version, ErrIndexVersionUnsupported)
	}
	count := binary.BigEndian.Uint32(body[8:12])

	entries := map[string]IndexEntry{}
	offset := indexHeaderSize
	for i := uint32(0); i < count; i++ {
		e, consumed, err := unmarshalEntry(body[offset:])
		if err != nil {
			return xerrors.Errorf("entry %d: %w", i, err)
		}
		entries[e.Path] = e
		offset += consumed
	}

	idx.entries = entries
	idx.changed = false
	return nil
}

func unmarshalEntry(data []byte) (e IndexEntry, consumed int, err error) {
	if len(data) < indexEntryMinSize {
		return e, 0, xerrors.Errorf("truncated entry: %w", ErrIndexCorrupt)
	}
	e.CTimeSec = binary.BigEndian.Uint32(data[0:4])
	e.CTimeNano = binary.BigEndian.Uint32(data[4:8])
	e.MTimeSec = binary.BigEndian.Uint32(data[8:12])
	e.MTimeNano = binary.BigEndian.Uint32(data[12:16])
	e.Dev = binary.BigEndian.Uint32(data[16:20])
	e.Ino = binary.BigEndian.Uint32(data[20:24])
	e.Mode = binary.BigEndian.Uint32(data[24:28])
	e.UID = binary.BigEndian.Uint32(data[28:32])
	e.GID = binary.BigEndian.Uint32(data[32:36])
	e.Size = binary.BigEndian.Uint32(data[36:40])
	oid, err := NewOidFromHex(data[40:60])
	if err != nil {
		return e, 0, xerrors.Errorf("invalid oid: %w", ErrIndexCorrupt)
	}
	e.Oid = oid
	// flags (2 bytes) at 60:62 are only used to cap the path length hint;
	// we read the path up to the terminating NUL instead.
	pathStart := 62

	// Scan byte by byte from the end of the fixed prefix to the NUL
	// terminator; the entry's total length is then rounded up to a
	// multiple of 8, matching how the writer pads.
	end := pathStart
	for {
		if end >= len(data) {
			return e, 0, xerrors.Errorf("unterminated path: %w", ErrIndexCorrupt)
		}
		if data[end] == 0 {
			break
		}
		end++
	}
	e.Path = string(data[pathStart:end])

	total := end + 1 // include the terminating NUL
	if total%8 != 0 {
		total = (total/8 + 1) * 8
	}
	return e, total, nil
}
