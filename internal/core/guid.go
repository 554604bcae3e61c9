package core

import "github.com/google/uuid"

// AppleCommonGUID and AppleSystemGUID are the two fixed GUIDs a v3 variable
// header's GUID field is compared against to derive its kind (spec.md §6).
var (
	AppleCommonGUID = uuid.MustParse("7C436110-AB2A-4BBB-A880-FE41995C9F82")
	AppleSystemGUID = uuid.MustParse("40A0DDD2-77F8-4392-B4A3-1E7304206516")
)

// ParseGUID reads the 16-byte GUID field at the start of b. The on-disk
// field holds the GUID's bytes in the same order as its text form (no
// mixed-endian field swapping), which is the layout uuid.FromBytes and
// uuid.MustParse both use, so no re-ordering is needed.
func ParseGUID(b []byte) (uuid.UUID, error) {
	return uuid.FromBytes(b[:16])
}

// PutGUID writes g's raw 16 bytes into b.
func PutGUID(b []byte, g uuid.UUID) {
	copy(b[:16], g[:])
}
