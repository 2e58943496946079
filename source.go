package geodat

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Source is a random-access, read-only view over a database file. An open
// file, a memory-mapped region, or an in-memory buffer all qualify; lookups
// only ever issue position-specified reads against it.
type Source interface {
	io.ReaderAt
	Size() int64
}

// fileSource adapts an open file. ReadAt is safe for concurrent use, so one
// fileSource can back any number of simultaneous lookups.
type fileSource struct {
	f    *os.File
	size int64
}

func (s *fileSource) ReadAt(p []byte, off int64) (int, error) { return s.f.ReadAt(p, off) }
func (s *fileSource) Size() int64                             { return s.size }
func (s *fileSource) Close() error                            { return s.f.Close() }

// openFileSource opens path and captures its length once.
func openFileSource(path string) (*fileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geodat: failed to open db file %q: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("geodat: failed to stat db file %q: %w", path, err)
	}
	return &fileSource{f: f, size: st.Size()}, nil
}

// MemorySource wraps an in-memory copy of a database. Useful for tests and
// for callers that already hold the bytes.
func MemorySource(data []byte) Source {
	return bytes.NewReader(data)
}

// readFull reads exactly len(p) bytes at off, with a bounds check against the
// source length so corrupt offsets fail cleanly instead of as short reads.
func readFull(src Source, p []byte, off int64) error {
	if off < 0 || off+int64(len(p)) > src.Size() {
		return fmt.Errorf("read of %d bytes at offset %d outside file bounds (%d)", len(p), off, src.Size())
	}
	if _, err := src.ReadAt(p, off); err != nil && err != io.EOF {
		return err
	}
	return nil
}
