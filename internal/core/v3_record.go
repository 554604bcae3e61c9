package core

import (
	"fmt"

	"github.com/google/uuid"
)

// varHeaderSize is the fixed on-disk size of a v3 VarHeader.
const varHeaderSize = 36

const varStartID = 0x55AA

// Variable state bytes (spec.md §3). VarSuperseded is not stored in the
// on-disk format's constant table — it is the bitwise AND of all three
// transition masks, computed once here.
const (
	VarAdded               uint8 = 0x7F
	VarInDeletedTransition uint8 = 0xFE
	VarDeleted             uint8 = 0xFD
	VarSuperseded          uint8 = VarAdded & VarInDeletedTransition & VarDeleted // 0x7C
)

// VarHeader is the fixed 36-byte header preceding each v3 record's key and
// value bytes.
type VarHeader struct {
	State    uint8
	Attrs    uint32
	NameSize uint32 // includes the key's trailing NUL
	DataSize uint32
	GUID     uuid.UUID
	CRC      uint32
}

// looksEmpty reports whether the 36 bytes at the head of the window are
// entirely 0x00 or entirely 0xFF — the "end of log" heuristic from
// spec.md §4.4 / §9's first open question. It is only consulted after
// start-id validation has already failed, which rules out the case where
// a genuine header happens to contain just those two byte values.
func looksEmpty(b []byte) bool {
	if len(b) < varHeaderSize {
		return false
	}
	allZero, allFF := true, true
	for _, c := range b[:varHeaderSize] {
		if c != 0 {
			allZero = false
		}
		if c != 0xFF {
			allFF = false
		}
	}
	return allZero || allFF
}

// ParseVarHeader parses the 36-byte header at the start of b and validates
// that the full record (header + name + data) fits within b.
func ParseVarHeader(b []byte) (VarHeader, error) {
	if len(b) < varHeaderSize {
		return VarHeader{}, fmt.Errorf("v3 var header: %w: short buffer", ErrParse)
	}
	startID := ReadU16(b[0:2])
	if startID != varStartID {
		return VarHeader{}, fmt.Errorf("v3 var header: %w: bad start id 0x%04x", ErrParse, startID)
	}
	guid, err := ParseGUID(b[16:32])
	if err != nil {
		return VarHeader{}, fmt.Errorf("v3 var header: %w: %v", ErrParse, err)
	}
	h := VarHeader{
		State:    b[2],
		Attrs:    ReadU32(b[4:8]),
		NameSize: ReadU32(b[8:12]),
		DataSize: ReadU32(b[12:16]),
		GUID:     guid,
		CRC:      ReadU32(b[32:36]),
	}
	if h.NameSize == 0 {
		return VarHeader{}, fmt.Errorf("v3 var header: %w: name size 0 has no room for the trailing NUL", ErrParse)
	}
	need := varHeaderSize + int(h.NameSize) + int(h.DataSize)
	if need > len(b) || need < varHeaderSize {
		return VarHeader{}, fmt.Errorf("v3 var header: %w: record of %d bytes does not fit in %d-byte window", ErrParse, need, len(b))
	}
	return h, nil
}

// Serialize appends the header's 36-byte on-disk form to v.
func (h VarHeader) Serialize(v []byte) []byte {
	var u16 [2]byte
	PutU16(u16[:], varStartID)
	v = append(v, u16[:]...)
	v = append(v, h.State, 0)
	var u32 [4]byte
	PutU32(u32[:], h.Attrs)
	v = append(v, u32[:]...)
	PutU32(u32[:], h.NameSize)
	v = append(v, u32[:]...)
	PutU32(u32[:], h.DataSize)
	v = append(v, u32[:]...)
	v = append(v, h.GUID[:]...)
	PutU32(u32[:], h.CRC)
	v = append(v, u32[:]...)
	return v
}

// Record is one v3 variable-store record: header, key (without the
// trailing NUL), and value.
type Record struct {
	Header VarHeader
	Key    []byte
	Value  []byte
}

// ParseRecord parses one record at the start of b, validating the value's
// CRC-32 against the header's stored one.
func ParseRecord(b []byte) (*Record, error) {
	header, err := ParseVarHeader(b)
	if err != nil {
		return nil, err
	}
	keyEnd := varHeaderSize + int(header.NameSize)
	key := append([]byte(nil), b[varHeaderSize:keyEnd-1]...) // strip trailing NUL
	valueEnd := keyEnd + int(header.DataSize)
	value := append([]byte(nil), b[keyEnd:valueEnd]...)

	if crc := CRC32(value); crc != header.CRC {
		return nil, fmt.Errorf("v3 record %q: %w: crc32 mismatch (have %08x, want %08x)", key, ErrParse, header.CRC, crc)
	}
	return &Record{Header: header, Key: key, Value: value}, nil
}

// Size is the record's total on-disk size: header + key+NUL + value.
func (r *Record) Size() int {
	return varHeaderSize + int(r.Header.NameSize) + int(r.Header.DataSize)
}

// Kind derives the record's namespace from its GUID field.
func (r *Record) Kind() Kind {
	if r.Header.GUID == AppleSystemGUID {
		return KindSystem
	}
	return KindCommon
}

// Live reports whether the record is the current (non-superseded,
// non-deleted) value for its key.
func (r *Record) Live() bool {
	return r.Header.State == VarAdded
}

// Supersede clears the record's VAR_ADDED, VAR_DELETED, and
// VAR_IN_DELETED_TRANSITION bits, tombstoning it (spec.md §3).
func (r *Record) Supersede() {
	r.Header.State = VarSuperseded
}

// Clone deep-copies the record.
func (r *Record) Clone() *Record {
	return &Record{
		Header: r.Header,
		Key:    append([]byte(nil), r.Key...),
		Value:  append([]byte(nil), r.Value...),
	}
}

// NewRecord builds a live record for key/value/kind, computing NameSize,
// DataSize, GUID, and CRC.
func NewRecord(key, value []byte, kind Kind) *Record {
	guid := AppleCommonGUID
	if kind == KindSystem {
		guid = AppleSystemGUID
	}
	return &Record{
		Header: VarHeader{
			State:    VarAdded,
			NameSize: uint32(len(key)) + 1,
			DataSize: uint32(len(value)),
			GUID:     guid,
			CRC:      CRC32(value),
		},
		Key:   append([]byte(nil), key...),
		Value: append([]byte(nil), value...),
	}
}

// Serialize appends the record's on-disk form (header, key, NUL, value) to v.
func (r *Record) Serialize(v []byte) []byte {
	v = r.Header.Serialize(v)
	v = append(v, r.Key...)
	v = append(v, 0)
	v = append(v, r.Value...)
	return v
}

// String renders "kind:key=value (state:0xXX)", percent-escaping
// non-printable bytes and truncating the value to 128 displayed
// characters, matching the original Rust Display impl.
func (r *Record) String() string {
	state := r.Header.State
	return formatVariable(r.Kind(), r.Key, r.Value, &state)
}
