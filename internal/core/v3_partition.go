package core

import "fmt"

// V3BankSize is the fixed size of one v3 bank window.
const V3BankSize = 0x10000

// V3Partition is one v3 bank's store header plus its append-only record
// log, in on-disk order. Order is load-bearing: GetVariable returns the
// first live match by log order, and Serialize preserves order exactly so
// crash recovery remains predictable (spec.md §9) — this must never be
// replaced with an unordered map.
type V3Partition struct {
	Header  StoreHeader
	Records []*Record
}

// ParseV3Partition parses a v3 bank from a window of up to V3BankSize
// bytes.
//
// This implements the "halting" parse variant spec.md §9 selects: a
// malformed record — one with a valid start-id whose CRC, length, or
// header fields are inconsistent — aborts the whole bank with ErrParse.
// The alternative "skipping" variant (skip one header-sized chunk and
// keep going) is not implemented.
func ParseV3Partition(nvr []byte) (*V3Partition, error) {
	header, err := ParseStoreHeader(nvr)
	if err != nil {
		return nil, err
	}

	limit := len(nvr)
	if int(header.Size) < limit {
		limit = int(header.Size)
	}

	var records []*Record
	offset := storeHeaderSize
	for offset+varHeaderSize <= limit {
		window := nvr[offset:limit]
		if !hasStartID(window) {
			if looksEmpty(window) {
				break
			}
			return nil, fmt.Errorf("v3 partition: %w: malformed record at offset %d", ErrParse, offset)
		}
		rec, err := ParseRecord(window)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		offset += rec.Size()
	}

	return &V3Partition{Header: header, Records: records}, nil
}

func hasStartID(b []byte) bool {
	return len(b) >= 2 && ReadU16(b[:2]) == varStartID
}

// Clone deep-copies the partition.
func (p *V3Partition) Clone() *V3Partition {
	records := make([]*Record, len(p.Records))
	for i, r := range p.Records {
		records[i] = r.Clone()
	}
	return &V3Partition{Header: p.Header, Records: records}
}

// Variables returns every live record, in log order.
func (p *V3Partition) Variables() []*Record {
	out := make([]*Record, 0, len(p.Records))
	for _, r := range p.Records {
		if r.Live() {
			out = append(out, r)
		}
	}
	return out
}

// GetVariable returns the first live (VAR_ADDED) record matching key and
// kind, by log order.
func (p *V3Partition) GetVariable(key []byte, kind Kind) *Record {
	for _, r := range p.Records {
		if r.Live() && r.Kind() == kind && string(r.Key) == string(key) {
			return r
		}
	}
	return nil
}

// InsertVariable supersedes any live record for (key, kind) and appends a
// new live record (spec.md §4.4).
func (p *V3Partition) InsertVariable(key, value []byte, kind Kind) {
	p.supersede(key, kind)
	p.Records = append(p.Records, NewRecord(key, value, kind))
}

// RemoveVariable supersedes any live record for (key, kind); no record is
// appended.
func (p *V3Partition) RemoveVariable(key []byte, kind Kind) {
	p.supersede(key, kind)
}

func (p *V3Partition) supersede(key []byte, kind Kind) {
	for _, r := range p.Records {
		if r.Live() && r.Kind() == kind && string(r.Key) == string(key) {
			r.Supersede()
		}
	}
}

// SystemUsed and CommonUsed sum Size() over live records of each kind —
// the quantities spec.md §4.4 checks against the store header's quotas.
func (p *V3Partition) SystemUsed() int { return p.usedBy(KindSystem) }
func (p *V3Partition) CommonUsed() int { return p.usedBy(KindCommon) }

func (p *V3Partition) usedBy(kind Kind) int {
	total := 0
	for _, r := range p.Records {
		if r.Live() && r.Kind() == kind {
			total += r.Size()
		}
	}
	return total
}

// TotalUsed is 24 (the store header) plus the size of every record,
// including tombstoned ones.
func (p *V3Partition) TotalUsed() int {
	total := storeHeaderSize
	for _, r := range p.Records {
		total += r.Size()
	}
	return total
}

// Compact returns a new partition containing only this partition's live
// records, with generation incremented by one — the form written to a
// freshly rotated-into bank (spec.md §4.4 step 2).
func (p *V3Partition) Compact() *V3Partition {
	out := &V3Partition{Header: p.Header}
	out.Header.Generation++
	for _, r := range p.Records {
		if r.Live() {
			out.Records = append(out.Records, r.Clone())
		}
	}
	return out
}

// Serialize appends the partition's on-disk form to v: the store header,
// then every record in log order, then 0xFF padding out to
// Header.Size bytes. Returns ErrSectionTooBig if the log does not fit.
func (p *V3Partition) Serialize(v []byte) ([]byte, error) {
	start := len(v)
	v = p.Header.Serialize(v)
	for _, r := range p.Records {
		v = r.Serialize(v)
	}
	written := len(v) - start
	if written > int(p.Header.Size) {
		return nil, fmt.Errorf("v3 partition: %w: %d bytes over %d-byte bank", ErrSectionTooBig, written-int(p.Header.Size), p.Header.Size)
	}
	for i := written; i < int(p.Header.Size); i++ {
		v = append(v, 0xFF)
	}
	return v, nil
}

// String renders "size: N, generation: N, count: N" over the partition's
// live records.
func (p *V3Partition) String() string {
	live := 0
	for _, r := range p.Records {
		if r.Live() {
			live++
		}
	}
	return fmt.Sprintf("size: %d, generation: %d, count: %d", p.Header.Size, p.Header.Generation, live)
}
