package core

import (
	"hash/adler32"
	"hash/crc32"
)

// CHRPChecksumAdd is byte addition with end-around carry, the primitive
// the CHRP header checksum (and nothing else in this codec) is built from.
func CHRPChecksumAdd(lhs, rhs uint8) uint8 {
	sum := uint16(lhs) + uint16(rhs)
	out := uint8(sum)
	if sum > 0xFF {
		out++
	}
	return out
}

// CHRPChecksum computes the CHRP header checksum over name, then signature,
// then the size low byte, then the size high byte, in that order (spec.md
// §4.2).
func CHRPChecksum(name []byte, signature uint8, size uint16) uint8 {
	var sum uint8
	for _, b := range name {
		sum = CHRPChecksumAdd(sum, b)
	}
	sum = CHRPChecksumAdd(sum, signature)
	sum = CHRPChecksumAdd(sum, uint8(size&0xFF))
	sum = CHRPChecksumAdd(sum, uint8(size>>8))
	return sum
}

// Adler32 computes the Adler-32 checksum of b, as used over the v1v2
// partition's [generation .. end_of_system) range.
func Adler32(b []byte) uint32 {
	return adler32.Checksum(b)
}

// CRC32 computes the IEEE CRC-32 of b, as used over a v3 record's value.
func CRC32(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}
