package nvram

import "github.com/nvramkit/nvram/internal/core"

// v1v2Nvram adapts a *core.V1V2Container to the public Nvram interface.
type v1v2Nvram struct {
	c *core.V1V2Container
}

func (n *v1v2Nvram) Partitions() []Partition {
	out := make([]Partition, len(n.c.Partitions))
	for i, p := range n.c.Partitions {
		out[i] = &v1v2PartitionView{p: p}
	}
	return out
}

func (n *v1v2Nvram) ActivePartitionMut() Partition {
	return &v1v2PartitionView{p: n.c.Partitions[n.c.Active]}
}

// PrepareForWrite clones the active bank into the inactive slot, bumps
// its generation, and makes it active — the previous generation stays on
// disk, untouched, until Apply writes the new one (spec.md §4.3).
func (n *v1v2Nvram) PrepareForWrite() {
	n.c.PrepareForWrite()
}

func (n *v1v2Nvram) Serialize() ([]byte, error) {
	data, err := n.c.Serialize(nil)
	if err != nil {
		return nil, mapCoreErr("serialize v1v2", err)
	}
	return data, nil
}

// Apply writes both banks, in bank order, at offset 0 — v1v2 has no
// partial-write path; the whole two-bank image is rewritten every time.
func (n *v1v2Nvram) Apply(w Writer) error {
	data, err := n.Serialize()
	if err != nil {
		return err
	}
	if err := w.WriteAll(0, data); err != nil {
		return &ApplyError{Cause: err}
	}
	return nil
}
