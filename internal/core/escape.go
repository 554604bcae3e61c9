package core

import "io"

// EscapeDecoder lazily decodes the v1v2 0x00/0xFF run-length escape codec
// (spec.md §4.1) over an underlying byte slice. It never reads past the
// end of the input, and a truncated trailing escape (a 0xFF with no
// following count byte) simply ends the stream rather than erroring —
// the codec is a pure, best-effort transformer for display and value
// retrieval, not a validating parser.
type EscapeDecoder struct {
	src     []byte
	pos     int
	fill    byte
	pending int
}

// NewEscapeDecoder wraps src for decoding. src is not copied or retained
// beyond what Read needs; the decoder does not mutate it.
func NewEscapeDecoder(src []byte) *EscapeDecoder {
	return &EscapeDecoder{src: src}
}

// Read implements io.Reader.
func (d *EscapeDecoder) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if d.pending > 0 {
			p[n] = d.fill
			d.pending--
			n++
			continue
		}
		if d.pos >= len(d.src) {
			if n > 0 {
				return n, nil
			}
			return 0, io.EOF
		}
		b := d.src[d.pos]
		d.pos++
		if b != 0xFF {
			p[n] = b
			n++
			continue
		}
		// Escape: next byte is a count with a high-bit fill selector.
		if d.pos >= len(d.src) {
			// Truncated escape at end of input: stop here.
			if n > 0 {
				return n, nil
			}
			return 0, io.EOF
		}
		count := d.src[d.pos]
		d.pos++
		if count&0x80 == 0 {
			d.fill = 0x00
		} else {
			d.fill = 0xFF
		}
		run := int(count & 0x7F)
		if run == 0 {
			// A zero-length run emits nothing; keep pulling from src.
			continue
		}
		d.pending = run
	}
	return n, nil
}

// DecodeEscaped decodes the full escaped buffer in one call, for callers
// that want the whole value rather than a streaming reader (e.g.
// Variable.Value()).
func DecodeEscaped(src []byte) []byte {
	dec := NewEscapeDecoder(src)
	out := make([]byte, 0, len(src))
	buf := make([]byte, 256)
	for {
		n, err := dec.Read(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			return out
		}
	}
}
