package ingest

import "time"

// Stats reports per-run throughput counters, mirroring the --stats output
// of the reference implementation this package was ported from.
type Stats struct {
	// BytesProcessed is the total size, in bytes, of all input files.
	BytesProcessed int64
	// RecordsProcessed is the number of successfully parsed JSON lines.
	RecordsProcessed int64
	// SkippedLines is the number of non-blank lines that failed to parse
	// as JSON. These are counted, not treated as fatal.
	SkippedLines int64
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// GiBPerSecond returns the byte throughput in gibibytes per second, or 0
// if Elapsed is zero.
func (s Stats) GiBPerSecond() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}

	const gib = 1024 * 1024 * 1024

	return float64(s.BytesProcessed) / gib / secs
}

// RecordsPerSecond returns record throughput, or 0 if Elapsed is zero.
func (s Stats) RecordsPerSecond() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}

	return float64(s.RecordsProcessed) / secs
}
