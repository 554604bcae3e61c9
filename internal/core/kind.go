package core

// Kind distinguishes the two namespaces a variable lives in: "common"
// (shared across platforms) and "system" (platform-specific). In v1v2 the
// kind is the enclosing section's name; in v3 it is derived from the
// variable's GUID field (spec.md §3).
type Kind uint8

const (
	KindCommon Kind = iota
	KindSystem
)

// String renders the kind the way the original Rust Display impl did
// ("common"/"system"), used by Partition/Variable formatting.
func (k Kind) String() string {
	if k == KindSystem {
		return "system"
	}
	return "common"
}
