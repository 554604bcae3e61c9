package core

import (
	"fmt"
	"strings"
)

// V1V2Variable is a key/value pair parsed from a CHRP section. RawValue is
// the on-disk bytes (still escape-encoded); Value decodes them.
type V1V2Variable struct {
	Key      []byte
	RawValue []byte
	Kind     Kind
}

// Value returns the decoded (un-escaped) value bytes.
func (v *V1V2Variable) Value() []byte {
	return DecodeEscaped(v.RawValue)
}

// String renders "kind:key=value", percent-escaping non-printable bytes
// and truncating the value to 128 displayed characters, matching the
// original Rust Display impl.
func (v *V1V2Variable) String() string {
	return formatVariable(v.Kind, v.Key, v.Value(), nil)
}

// formatVariable is shared by the v1v2 and v3 variable Stringers. state is
// nil for v1v2 (which has no per-record state byte).
func formatVariable(kind Kind, key, value []byte, state *uint8) string {
	var b strings.Builder
	b.WriteString(kind.String())
	b.WriteByte(':')
	b.Write(key)
	b.WriteByte('=')
	shown := 0
	for _, c := range value {
		if shown >= 128 {
			break
		}
		if c < 0x80 && isPrintableASCII(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02x", c)
		}
		shown++
	}
	if state != nil {
		fmt.Fprintf(&b, " (state:0x%02x)", *state)
	}
	return b.String()
}

func isPrintableASCII(c byte) bool {
	return c >= 0x20 && c < 0x7F
}
