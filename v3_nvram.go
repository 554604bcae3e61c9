package nvram

import (
	"errors"

	"github.com/nvramkit/nvram/internal/core"
)

// v3Nvram adapts a *core.V3Container to the public Nvram interface.
type v3Nvram struct {
	c *core.V3Container
}

func (n *v3Nvram) Partitions() []Partition {
	out := make([]Partition, 0, n.c.NumBanks)
	for i := 0; i < n.c.NumBanks; i++ {
		if n.c.States[i] == core.BankValid {
			out = append(out, &v3PartitionView{p: n.c.Banks[i]})
		}
	}
	return out
}

func (n *v3Nvram) ActivePartitionMut() Partition {
	return &v3PartitionView{p: n.c.Banks[n.c.Active]}
}

// PrepareForWrite is a no-op for v3: Apply's own bank-rotation state
// machine decides, at write time, whether the active bank is rewritten
// in place or compacted into the next bank (spec.md §4.4).
func (n *v3Nvram) PrepareForWrite() {}

// Serialize returns the full multi-bank image, in bank order.
func (n *v3Nvram) Serialize() ([]byte, error) {
	data, err := n.c.Serialize(nil)
	if err != nil {
		return nil, mapCoreErr("serialize v3", err)
	}
	return data, nil
}

// Apply runs the bank-rotation state machine and writes only the bank
// that changed — either the active bank in place, or the next bank after
// compaction (spec.md §4.4).
func (n *v3Nvram) Apply(w Writer) error {
	if err := n.c.Apply(w); err != nil {
		if errors.Is(err, core.ErrSectionTooBig) {
			return &SectionTooBigError{Op: "apply v3", Cause: err}
		}
		return &ApplyError{Cause: err}
	}
	return nil
}
