package ingest

import (
	"io"
	"sync"

	gojson "github.com/goccy/go-json"
)

// ProgressEvent reports bytes consumed so far for one input file. Events
// are coalesced to one per completed chunk, not one per line, so a
// subscriber sees steady updates without being flooded.
type ProgressEvent struct {
	Path           string `json:"path"`
	BytesProcessed int64  `json:"bytes_processed"`
	TotalBytes     int64  `json:"total_bytes"`
}

// progressReporter serializes ProgressEvents as newline-delimited JSON and
// writes them to an underlying [io.Writer], such as a [*log.Publisher]
// subscribed to by a CLI progress bar. Safe for concurrent use by the
// per-chunk workers in [Run].
type progressReporter struct {
	w  io.Writer
	mu sync.Mutex
}

func newProgressReporter(w io.Writer) *progressReporter {
	if w == nil {
		return nil
	}

	return &progressReporter{w: w}
}

func (p *progressReporter) report(ev ProgressEvent) {
	if p == nil {
		return
	}

	line, err := gojson.Marshal(ev)
	if err != nil {
		return
	}

	line = append(line, '\n')

	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = p.w.Write(line)
}
