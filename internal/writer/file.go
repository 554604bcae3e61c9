// Package writer provides reference WriteAll/EraseIfNeeded collaborators
// for Apply: a file-backed one for real NVRAM device nodes or disk images,
// and an in-memory one for tests.
package writer

import (
	"fmt"
	"io"
	"os"
)

// CreateMode specifies the file creation behavior.
type CreateMode int

const (
	// ModeTruncate opens or creates the file, truncating any existing
	// contents. Equivalent to os.Create.
	ModeTruncate CreateMode = iota
	// ModeExisting opens an existing file for read-write without
	// truncating it, the mode an actual /dev/nvram-style device node
	// requires.
	ModeExisting
)

// File wraps an os.File as a bank-addressed write sink. Unlike a
// general-purpose allocator-backed writer, NVRAM writes always target a
// bank-aligned offset chosen by the caller (a partition or bank index
// times its fixed size) — there is no end-of-file append path to track.
//
// Thread-safety: not thread-safe. Caller must synchronize access.
type File struct {
	file *os.File
}

// NewFile opens filename per mode and returns a File ready for WriteAll.
func NewFile(filename string, mode CreateMode) (*File, error) {
	var f *os.File
	var err error
	switch mode {
	case ModeTruncate:
		f, err = os.Create(filename)
	case ModeExisting:
		f, err = os.OpenFile(filename, os.O_RDWR, 0)
	default:
		return nil, fmt.Errorf("writer: invalid create mode: %d", mode)
	}
	if err != nil {
		return nil, fmt.Errorf("writer: open %s: %w", filename, err)
	}
	return &File{file: f}, nil
}

// WriteAll writes buf at the absolute byte offset, failing if the
// underlying write is short.
func (w *File) WriteAll(offset uint32, buf []byte) error {
	if w.file == nil {
		return fmt.Errorf("writer: file is closed")
	}
	n, err := w.file.WriteAt(buf, int64(offset))
	if err != nil {
		return fmt.Errorf("writer: write at offset %d: %w", offset, err)
	}
	if n != len(buf) {
		return fmt.Errorf("writer: short write at offset %d: wrote %d of %d bytes", offset, n, len(buf))
	}
	return nil
}

// EraseIfNeeded is a documented no-op: issuing the real flash erase cycle
// a hardware NVRAM device needs before a bank can be rewritten is an
// ioctl-level collaborator outside this package's scope. Callers writing
// to an actual device node must erase out of band before Apply rotates
// into a non-empty bank.
func (w *File) EraseIfNeeded(offset uint32, length int) {}

// Flush commits pending writes to stable storage.
func (w *File) Flush() error {
	if w.file == nil {
		return fmt.Errorf("writer: file is closed")
	}
	return w.file.Sync()
}

// Close closes the underlying file. Flush first if durability matters.
func (w *File) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

var _ io.Closer = (*File)(nil)
