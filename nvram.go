// Package nvram parses and serializes Apple's two on-disk NVRAM
// formats: the CHRP-derived "v1v2" format (two fixed 0x10000-byte banks)
// used on PowerPC and Intel Macs, and the journal-style "v3" format (up
// to sixteen 0x10000-byte banks) used on Apple Silicon Macs.
package nvram

import "github.com/nvramkit/nvram/internal/core"

// Parse auto-detects and parses an NVRAM image: v3 is tried first, then
// v1v2. If both fail, a *ParseError wrapping the v1v2 attempt's cause is
// returned (spec.md §4.5).
func Parse(data []byte) (Nvram, error) {
	if c, err := core.ParseV3Container(data); err == nil {
		return &v3Nvram{c: c}, nil
	}
	c, err := core.ParseV1V2Container(data)
	if err != nil {
		return nil, mapCoreErr("auto-detect", err)
	}
	return &v1v2Nvram{c: c}, nil
}

// ParseV1V2 parses data as the CHRP-derived two-bank format directly,
// without falling back to v3.
func ParseV1V2(data []byte) (Nvram, error) {
	c, err := core.ParseV1V2Container(data)
	if err != nil {
		return nil, mapCoreErr("parse v1v2", err)
	}
	return &v1v2Nvram{c: c}, nil
}

// ParseV3 parses data as the journal-style multi-bank format directly,
// without falling back to v1v2.
func ParseV3(data []byte) (Nvram, error) {
	c, err := core.ParseV3Container(data)
	if err != nil {
		return nil, mapCoreErr("parse v3", err)
	}
	return &v3Nvram{c: c}, nil
}
