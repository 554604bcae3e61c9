package core

import "fmt"

// storeHeaderSize is the fixed on-disk size of a v3 StoreHeader.
const storeHeaderSize = 24

// variableStoreSignature is the 4-byte "3VVN" magic at the start of every
// v3 bank.
var variableStoreSignature = [4]byte{'3', 'V', 'V', 'N'}

const variableStoreVersion = 1

// StoreHeader is the fixed 24-byte header at the start of a v3 bank
// (spec.md §3, §6).
type StoreHeader struct {
	Size       uint32
	Generation uint32
	State      uint8
	Flags      uint8
	Version    uint8
	SystemSize uint32
	CommonSize uint32
}

// ParseStoreHeader parses the 24-byte header at the start of b.
func ParseStoreHeader(b []byte) (StoreHeader, error) {
	if len(b) < storeHeaderSize {
		return StoreHeader{}, fmt.Errorf("v3 store header: %w: short buffer", ErrParse)
	}
	if b[0] != variableStoreSignature[0] || b[1] != variableStoreSignature[1] ||
		b[2] != variableStoreSignature[2] || b[3] != variableStoreSignature[3] {
		return StoreHeader{}, fmt.Errorf("v3 store header: %w: bad signature", ErrParse)
	}
	h := StoreHeader{
		Size:       ReadU32(b[4:8]),
		Generation: ReadU32(b[8:12]),
		State:      b[12],
		Flags:      b[13],
		Version:    b[14],
		SystemSize: ReadU32(b[16:20]),
		CommonSize: ReadU32(b[20:24]),
	}
	if h.Version != variableStoreVersion {
		return StoreHeader{}, fmt.Errorf("v3 store header: %w: unsupported version %d", ErrParse, h.Version)
	}
	return h, nil
}

// Serialize appends the header's 24-byte on-disk form to v.
func (h StoreHeader) Serialize(v []byte) []byte {
	v = append(v, variableStoreSignature[:]...)
	var u32 [4]byte
	PutU32(u32[:], h.Size)
	v = append(v, u32[:]...)
	PutU32(u32[:], h.Generation)
	v = append(v, u32[:]...)
	v = append(v, h.State, h.Flags, h.Version, 0)
	PutU32(u32[:], h.SystemSize)
	v = append(v, u32[:]...)
	PutU32(u32[:], h.CommonSize)
	v = append(v, u32[:]...)
	return v
}
