//go:build !unix

package ingest

import (
	"fmt"
	"io"
	"os"
)

// mappedFile holds a file's contents read fully into memory, used on
// platforms without a POSIX mmap syscall.
type mappedFile struct {
	data []byte
	f    *os.File
}

// mapFile reads path fully into memory. It exposes the same interface as
// the unix mmap-backed implementation so callers are platform-agnostic.
func mapFile(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return &mappedFile{data: data, f: f}, nil
}

// Close releases the file descriptor. There is no mapping to unmap.
func (m *mappedFile) Close() error {
	return m.f.Close()
}
