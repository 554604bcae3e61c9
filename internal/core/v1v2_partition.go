package core

import (
	"fmt"
)

const v1v2PartitionPrefix = 32 // header(16) + adler32(4) + generation(4) + reserved(8)

// V1V2Partition is one CHRP "nvram" partition: header, Adler-32, generation,
// and the common/system sections (spec.md §3).
type V1V2Partition struct {
	Header     CHRPHeader
	Generation uint32
	Common     Section
	System     Section
}

// ParseV1V2Partition parses a partition from a 0x10000-byte window
// (spec.md §4.3).
func ParseV1V2Partition(nvr []byte) (*V1V2Partition, error) {
	if len(nvr) < v1v2PartitionPrefix {
		return nil, fmt.Errorf("v1v2 partition: %w: short buffer", ErrParse)
	}
	header, err := ParseCHRPHeader(nvr)
	if err != nil {
		return nil, err
	}
	if !header.NameIs("nvram") {
		return nil, fmt.Errorf("v1v2 partition: %w: header name is %q, want \"nvram\"", ErrParse, header.Name)
	}
	adler := ReadU32(nvr[16:20])
	generation := ReadU32(nvr[20:24])

	sec1, err := ParseSection(nvr[32:])
	if err != nil {
		return nil, err
	}
	sec2, err := ParseSection(nvr[32+sec1.SizeBytes():])
	if err != nil {
		return nil, err
	}

	end := 32 + sec1.SizeBytes() + sec2.SizeBytes()
	if calc := Adler32(nvr[20:end]); calc != adler {
		return nil, fmt.Errorf("v1v2 partition: %w: adler32 mismatch (have %08x, want %08x)", ErrParse, adler, calc)
	}

	var common, system *Section
	assign := func(s Section) {
		switch {
		case s.Header.NameIs("common"):
			c := s
			common = &c
		case s.Header.NameIs("system"):
			sys := s
			system = &sys
		}
	}
	assign(sec1)
	assign(sec2)
	if common == nil || system == nil {
		return nil, fmt.Errorf("v1v2 partition: %w: missing common or system section", ErrParse)
	}

	return &V1V2Partition{
		Header:     header,
		Generation: generation,
		Common:     *common,
		System:     *system,
	}, nil
}

// SizeBytes is the partition's total on-disk size.
func (p *V1V2Partition) SizeBytes() int {
	return v1v2PartitionPrefix + p.Common.SizeBytes() + p.System.SizeBytes()
}

// Clone deep-copies the partition so mutating the copy never aliases the
// original (used by Container.parse's single-surviving-bank recovery and
// by prepare-for-write's generation bump).
func (p *V1V2Partition) Clone() *V1V2Partition {
	clone := *p
	clone.Common = cloneSection(p.Common)
	clone.System = cloneSection(p.System)
	return &clone
}

func cloneSection(s Section) Section {
	values := make(map[string]*V1V2Variable, len(s.Values))
	for k, v := range s.Values {
		cp := *v
		cp.Key = append([]byte(nil), v.Key...)
		cp.RawValue = append([]byte(nil), v.RawValue...)
		values[k] = &cp
	}
	return Section{Header: s.Header, Values: values}
}

// Serialize appends the partition's on-disk form to v: header, a zero
// Adler-32 placeholder, generation, 8 reserved zero bytes, then common and
// system sections, after which the placeholder is patched with the
// Adler-32 of [generation .. end_of_system).
func (p *V1V2Partition) Serialize(v []byte) ([]byte, error) {
	v = p.Header.Serialize(v)
	v = append(v, 0, 0, 0, 0) // adler32 placeholder
	adlerStart := len(v)

	var genBuf [4]byte
	PutU32(genBuf[:], p.Generation)
	v = append(v, genBuf[:]...)
	v = append(v, make([]byte, 8)...) // reserved

	var err error
	v, err = p.Common.Serialize(v)
	if err != nil {
		return nil, err
	}
	v, err = p.System.Serialize(v)
	if err != nil {
		return nil, err
	}

	adler := Adler32(v[adlerStart:])
	PutU32(v[adlerStart-4:adlerStart], adler)
	return v, nil
}

// Variables iterates both sections' variables (common, then system).
func (p *V1V2Partition) Variables() []*V1V2Variable {
	out := make([]*V1V2Variable, 0, len(p.Common.Values)+len(p.System.Values))
	for _, v := range p.Common.Values {
		out = append(out, v)
	}
	for _, v := range p.System.Values {
		out = append(out, v)
	}
	return out
}

// GetVariable looks up key in the kind's section.
func (p *V1V2Partition) GetVariable(key []byte, kind Kind) *V1V2Variable {
	return p.sectionFor(kind).Values[string(key)]
}

// InsertVariable inserts or overwrites key in the kind's section
// (last-writer-wins).
func (p *V1V2Partition) InsertVariable(key, value []byte, kind Kind) {
	keyCopy := append([]byte(nil), key...)
	valueCopy := append([]byte(nil), value...)
	p.sectionFor(kind).Values[string(keyCopy)] = &V1V2Variable{Key: keyCopy, RawValue: valueCopy, Kind: kind}
}

// RemoveVariable removes key from the kind's section, if present.
func (p *V1V2Partition) RemoveVariable(key []byte, kind Kind) {
	delete(p.sectionFor(kind).Values, string(key))
}

func (p *V1V2Partition) sectionFor(kind Kind) *Section {
	if kind == KindSystem {
		return &p.System
	}
	return &p.Common
}

// String renders "size: N, generation: N, count: N", matching the
// original Rust Display impl.
func (p *V1V2Partition) String() string {
	return fmt.Sprintf("size: %d, generation: %d, count: %d",
		p.Header.SizeUnits, p.Generation, len(p.Common.Values)+len(p.System.Values))
}
