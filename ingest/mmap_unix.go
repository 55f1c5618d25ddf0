//go:build unix

package ingest

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mappedFile holds a memory-mapped file's contents together with the
// handles needed to unmap and close it.
type mappedFile struct {
	data []byte
	f    *os.File
}

// mapFile memory-maps path read-only for the lifetime of the returned
// mappedFile. Callers must call Close when done.
func mapFile(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	size := info.Size()
	if size == 0 {
		return &mappedFile{f: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("%w: mmap: %w", ErrReadInput, err)
	}

	return &mappedFile{data: data, f: f}, nil
}

// Close unmaps the file and releases its descriptor.
func (m *mappedFile) Close() error {
	var err error

	if m.data != nil {
		err = unix.Munmap(m.data)
	}

	if cerr := m.f.Close(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}
