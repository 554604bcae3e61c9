// Package core implements the byte-exact v1/v2 and v3 NVRAM codecs: header
// and record parsing/serialization, checksums, and the escape codec. It has
// no notion of an active bank, a writer, or the unified surface — those
// live in the root package, which wraps the types defined here.
package core

import "encoding/binary"

// ReadU16 reads a little-endian u16 at the start of b.
func ReadU16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

// ReadU32 reads a little-endian u32 at the start of b.
func ReadU32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// PutU16 writes v as a little-endian u16 at the start of b.
func PutU16(b []byte, v uint16) {
	binary.LittleEndian.PutUint16(b, v)
}

// PutU32 writes v as a little-endian u32 at the start of b.
func PutU32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}
