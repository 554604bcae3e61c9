package core

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrParse reports a byte-level decode failure: a bad signature, a bad
// checksum, a bad CRC, a bad Adler-32, a missing required section, or a
// length that overflows the window it was read from. It collapses every
// v1v2 and v3 parse failure into one sentinel (spec.md §7); callers that
// need more context get it from the wrapping error's message.
var ErrParse = errors.New("parse error")

// ErrSectionTooBig reports that a serialized section, partition, or bank
// would exceed its declared or quota-enforced capacity (spec.md §7).
var ErrSectionTooBig = errors.New("section too big")

// chrpHeaderSize is the fixed on-disk size of a CHRPHeader.
const chrpHeaderSize = 16

// CHRPHeader is the 16-byte header shared by CHRP sections and partitions
// (spec.md §3, §6). SizeUnits is the size, in 16-byte units, of the
// *enclosing* section or partition, not of the header itself.
type CHRPHeader struct {
	Signature uint8
	SizeUnits uint16
	Name      []byte // up to 12 bytes, trailing zero padding stripped
}

// ParseCHRPHeader parses the 16-byte header at the start of b and
// validates its checksum.
func ParseCHRPHeader(b []byte) (CHRPHeader, error) {
	if len(b) < chrpHeaderSize {
		return CHRPHeader{}, fmt.Errorf("chrp header: %w: short buffer", ErrParse)
	}
	signature := b[0]
	checksum := b[1]
	size := ReadU16(b[2:4])
	name := rstripZero(b[4:16])

	hdr := CHRPHeader{Signature: signature, SizeUnits: size, Name: name}
	if CHRPChecksum(hdr.Name, hdr.Signature, hdr.SizeUnits) != checksum {
		return CHRPHeader{}, fmt.Errorf("chrp header: %w: bad checksum", ErrParse)
	}
	return hdr, nil
}

// Serialize appends the header's 16-byte on-disk form to v.
func (h CHRPHeader) Serialize(v []byte) []byte {
	v = append(v, h.Signature, CHRPChecksum(h.Name, h.Signature, h.SizeUnits))
	var sizeBuf [2]byte
	PutU16(sizeBuf[:], h.SizeUnits)
	v = append(v, sizeBuf[:]...)
	v = append(v, h.Name...)
	for i := len(h.Name); i < 12; i++ {
		v = append(v, 0)
	}
	return v
}

// NameIs reports whether the header's name equals name (e.g. "nvram",
// "common", "system").
func (h CHRPHeader) NameIs(name string) bool {
	return bytes.Equal(h.Name, []byte(name))
}

func rstripZero(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	out := make([]byte, end)
	copy(out, b[:end])
	return out
}
