package core

import "fmt"

const v1v2BankOffset = 0x10000
const v1v2ContainerSize = 2 * v1v2BankOffset

// V1V2Container holds the two v1v2 partitions (banks) and the index of the
// active one (spec.md §3, §4.3).
type V1V2Container struct {
	Partitions [2]*V1V2Partition
	Active     int
}

// ParseV1V2Container attempts to parse partitions at offset 0 and 0x10000.
// If both fail, the first partition's parse error is returned. If exactly
// one succeeds, it is cloned into the other slot so both bank
// representations are well-defined (spec.md §4.3's localized recovery).
// The active bank is whichever has the higher generation; ties resolve to
// index 1.
func ParseV1V2Container(nvr []byte) (*V1V2Container, error) {
	if len(nvr) < v1v2ContainerSize {
		return nil, fmt.Errorf("v1v2 container: %w: image is %d bytes, want at least %d",
			ErrParse, len(nvr), v1v2ContainerSize)
	}

	p1, err1 := ParseV1V2Partition(nvr[:v1v2BankOffset])
	p2, err2 := ParseV1V2Partition(nvr[v1v2BankOffset:])

	var c V1V2Container
	switch {
	case err1 != nil && err2 != nil:
		return nil, err1
	case err1 != nil:
		c.Partitions = [2]*V1V2Partition{p2.Clone(), p2}
	case err2 != nil:
		c.Partitions = [2]*V1V2Partition{p1, p1.Clone()}
	default:
		c.Partitions = [2]*V1V2Partition{p1, p2}
	}

	if c.Partitions[0].Generation > c.Partitions[1].Generation {
		c.Active = 0
	} else {
		c.Active = 1
	}
	return &c, nil
}

// PrepareForWrite copies the active partition into the inactive slot,
// increments the copy's generation, and makes it the new active partition
// — the previous generation remains intact on disk until Apply writes the
// new one (spec.md §4.3).
func (c *V1V2Container) PrepareForWrite() {
	inactive := 1 - c.Active
	next := c.Partitions[c.Active].Clone()
	next.Generation++
	c.Partitions[inactive] = next
	c.Active = inactive
}

// Serialize appends both partitions' on-disk forms to v, in bank order
// (offset 0 then offset 0x10000). Each partition is padded with 0xFF to
// the full 0x10000-byte bank.
func (c *V1V2Container) Serialize(v []byte) ([]byte, error) {
	var err error
	start := len(v)
	v, err = c.Partitions[0].Serialize(v)
	if err != nil {
		return nil, err
	}
	for len(v)-start < v1v2BankOffset {
		v = append(v, 0xFF)
	}
	start = len(v)
	v, err = c.Partitions[1].Serialize(v)
	if err != nil {
		return nil, err
	}
	for len(v)-start < v1v2BankOffset {
		v = append(v, 0xFF)
	}
	return v, nil
}
