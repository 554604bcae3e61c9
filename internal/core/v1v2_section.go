package core

import (
	"bytes"
	"fmt"
)

// Section is a CHRP section: a header plus a set of key/value records,
// parsed as "key=value\0" from byte 16 until the section's declared size
// is exhausted or a record is malformed (spec.md §3). Values is a set
// keyed by name — record order within a section is not observable and is
// never serialized (spec.md §9).
type Section struct {
	Header CHRPHeader
	Values map[string]*V1V2Variable
}

// ParseSection parses a section starting at offset 0 of nvr. Records are
// read only within the header's declared size; a declared size smaller
// than the header or larger than nvr is ErrParse. The section's kind
// ("common" vs "system") is derived from the parsed header's name, not
// supplied by the caller.
func ParseSection(nvr []byte) (Section, error) {
	header, err := ParseCHRPHeader(nvr)
	if err != nil {
		return Section{}, err
	}
	var kind Kind
	if header.NameIs("system") {
		kind = KindSystem
	}
	size := int(header.SizeUnits) * 16
	if size < chrpHeaderSize || size > len(nvr) {
		return Section{}, fmt.Errorf("section %q: %w: declared size %d does not fit in %d-byte window",
			header.Name, ErrParse, size, len(nvr))
	}
	rest := nvr[chrpHeaderSize:size]
	values := make(map[string]*V1V2Variable)

	for {
		zero := bytes.IndexByte(rest, 0)
		if zero < 0 {
			break
		}
		candidate := rest[:zero]
		eq := bytes.IndexByte(candidate, '=')
		if eq < 0 {
			break
		}
		key := candidate[:eq]
		value := candidate[eq+1:]
		keyCopy := append([]byte(nil), key...)
		valueCopy := append([]byte(nil), value...)
		values[string(keyCopy)] = &V1V2Variable{Key: keyCopy, RawValue: valueCopy, Kind: kind}
		rest = rest[zero+1:]
	}

	return Section{Header: header, Values: values}, nil
}

// SizeBytes is the section's declared size in bytes (header.SizeUnits*16),
// the ceiling its serialized form must not exceed.
func (s Section) SizeBytes() int {
	return int(s.Header.SizeUnits) * 16
}

// Serialize appends the section's on-disk form (header, then each
// "key=value\0" record, then zero-padding to SizeBytes) to v. Returns
// ErrSectionTooBig if the records do not fit.
func (s Section) Serialize(v []byte) ([]byte, error) {
	start := len(v)
	v = s.Header.Serialize(v)
	for _, val := range s.Values {
		v = append(v, val.Key...)
		v = append(v, '=')
		v = append(v, val.RawValue...)
		v = append(v, 0)
	}
	written := len(v) - start
	if written > s.SizeBytes() {
		return nil, fmt.Errorf("section %q: %w: %d bytes over %d-byte budget",
			s.Header.Name, ErrSectionTooBig, written-s.SizeBytes(), s.SizeBytes())
	}
	for i := written; i < s.SizeBytes(); i++ {
		v = append(v, 0)
	}
	return v, nil
}
