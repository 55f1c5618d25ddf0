package ingest

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrReadInput indicates an input file could not be opened, stat'd,
	// or mapped into memory.
	ErrReadInput = errors.New("read input")
	// ErrNoInput indicates Run was called with no paths.
	ErrNoInput = errors.New("no input files")
)
