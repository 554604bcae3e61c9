package nvram

import (
	"errors"
	"fmt"

	"github.com/nvramkit/nvram/internal/core"
)

// ErrParse is the sentinel errors.Is(err, ErrParse) matches against any
// *ParseError, regardless of which layer or format produced it.
var ErrParse = errors.New("nvram: parse error")

// ErrSectionTooBig is the sentinel errors.Is(err, ErrSectionTooBig)
// matches against any *SectionTooBigError.
var ErrSectionTooBig = errors.New("nvram: section too big")

// ParseError reports a failure to parse an NVRAM image, wrapping the
// lower-level cause (usually from internal/core) with the operation that
// was attempted.
type ParseError struct {
	Op    string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("nvram: parse error: %v", e.Cause)
	}
	return fmt.Sprintf("nvram: parse error (%s): %v", e.Op, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// SectionTooBigError reports that serialized content would not fit in its
// fixed-size destination — a section, a bank, or a partition.
type SectionTooBigError struct {
	Op    string
	Cause error
}

func (e *SectionTooBigError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("nvram: section too big: %v", e.Cause)
	}
	return fmt.Sprintf("nvram: section too big (%s): %v", e.Op, e.Cause)
}

func (e *SectionTooBigError) Unwrap() error { return e.Cause }
func (e *SectionTooBigError) Is(target error) bool { return target == ErrSectionTooBig }

// ApplyError wraps an I/O failure surfaced by a Writer or Eraser during
// Apply — anything that is not a quota/capacity problem.
type ApplyError struct {
	Cause error
}

func (e *ApplyError) Error() string { return fmt.Sprintf("nvram: apply failed: %v", e.Cause) }
func (e *ApplyError) Unwrap() error { return e.Cause }

// mapCoreErr classifies an internal/core error into the richer public
// error types, falling back to returning it unwrapped if it matches
// neither known sentinel.
func mapCoreErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrSectionTooBig):
		return &SectionTooBigError{Op: op, Cause: err}
	case errors.Is(err, core.ErrParse):
		return &ParseError{Op: op, Cause: err}
	default:
		return err
	}
}
