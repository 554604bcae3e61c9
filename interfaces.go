package nvram

import "fmt"

// Writer is the persistence sink Apply writes a serialized bank or image
// through. Any type satisfying this single method also satisfies
// internal/core's identically-shaped Writer interface, by Go's
// structural typing — no import relationship between the two is needed.
type Writer interface {
	WriteAll(offset uint32, buf []byte) error
}

// Eraser is an optional capability a Writer may implement: v3 Apply calls
// EraseIfNeeded before rotating into a bank that was not already empty.
// In-place v3 writes and v1v2 Apply never call it. Writers that don't
// implement it are treated as needing no erase step.
type Eraser interface {
	EraseIfNeeded(offset uint32, length int)
}

// Nvram is the version-agnostic view over a parsed v1v2 or v3 image
// (spec.md §4.5, §4.6). Parse selects the concrete implementation; all
// further interaction goes through this interface.
//
// An Nvram is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves, e.g. with a sync.Mutex.
type Nvram interface {
	// Partitions returns every partition the image holds, in on-disk
	// bank order. For v1v2 this is always both banks; for v3 it is every
	// bank classified Valid.
	Partitions() []Partition

	// ActivePartitionMut returns the partition mutations should target:
	// the active bank.
	ActivePartitionMut() Partition

	// PrepareForWrite stages the next generation for formats that need
	// an explicit staging step before Apply (v1v2's shadow-bank copy).
	// It is a no-op for v3, whose Apply already rotates banks itself.
	PrepareForWrite()

	// Serialize returns the full on-disk image: every bank or
	// partition, in bank order.
	Serialize() ([]byte, error)

	// Apply persists the current in-memory state through w: the whole
	// image for v1v2, or only the bank that changed for v3.
	Apply(w Writer) error
}

// Partition is one bank's variable set.
type Partition interface {
	fmt.Stringer

	// Variables returns every live variable the partition holds.
	Variables() []Variable

	// GetVariable looks up key in kind's namespace.
	GetVariable(key []byte, kind VarKind) (Variable, bool)

	// InsertVariable inserts or overwrites key in kind's namespace.
	InsertVariable(key, value []byte, kind VarKind)

	// RemoveVariable removes key from kind's namespace, if present.
	RemoveVariable(key []byte, kind VarKind)
}

// Variable is one key/value pair within a partition's common or system
// namespace.
type Variable interface {
	fmt.Stringer

	Key() []byte
	Kind() VarKind
	Value() []byte
}
