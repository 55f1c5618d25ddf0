package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cab7390/schema/chunk"
	"github.com/cab7390/schema/ndjson"
	"github.com/cab7390/schema/schema"
)

// Result is the outcome of a call to [Run]: the merged schema lattice
// observed across every input file, plus throughput statistics.
type Result struct {
	Schema *schema.Schema
	Stats  Stats
}

// Option configures a [Run] invocation.
type Option func(*runOptions)

type runOptions struct {
	progress io.Writer
	initial  *schema.Schema
}

// WithProgress reports [ProgressEvent]s to w as each chunk completes, one
// JSON line per event. Typically w is a [*log.Publisher] so a CLI can
// subscribe to it for a progress bar.
func WithProgress(w io.Writer) Option {
	return func(o *runOptions) {
		o.progress = w
	}
}

// WithInitialSchema seeds the accumulator with a previously persisted
// schema (the --schema flag's load-and-merge behavior), so a later run can
// extend a schema inferred from an earlier one.
func WithInitialSchema(s *schema.Schema) Option {
	return func(o *runOptions) {
		o.initial = s
	}
}

// chunkResult is the per-goroutine accumulator folded over one [chunk.Range].
type chunkResult struct {
	schema  *schema.Schema
	records int64
	skipped int64
}

// Run infers a schema from the NDJSON records in paths, processing each
// file's chunks in parallel and folding the per-chunk accumulators into a
// single result. It implements the parallel driver design: memory-map each
// file, split it into line-aligned chunks, infer and merge within each
// chunk on its own goroutine, then pairwise-reduce the chunk results.
//
// Malformed individual lines are counted in Stats.SkippedLines and do not
// abort the run; only a file-level I/O failure does.
func Run(ctx context.Context, paths []string, schemaCfg *schema.Config, chunkCfg *chunk.Config, opts ...Option) (*Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	var options runOptions
	for _, opt := range opts {
		opt(&options)
	}

	start := time.Now()

	result := &Result{Schema: options.initial}

	for _, path := range paths {
		fileSchema, fileStats, err := runFile(ctx, path, schemaCfg, chunkCfg, &options)
		if err != nil {
			return nil, err
		}

		result.Schema = schema.Merge(result.Schema, fileSchema, schemaCfg)
		result.Stats.BytesProcessed += fileStats.BytesProcessed
		result.Stats.RecordsProcessed += fileStats.RecordsProcessed
		result.Stats.SkippedLines += fileStats.SkippedLines
	}

	result.Stats.Elapsed = time.Since(start)

	return result, nil
}

// runFile processes a single file and returns its own schema and stats,
// independent of any other file in the run.
func runFile(ctx context.Context, path string, schemaCfg *schema.Config, chunkCfg *chunk.Config, options *runOptions) (*schema.Schema, Stats, error) {
	mapped, err := mapFile(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer mapped.Close()

	data := mapped.data
	stats := Stats{BytesProcessed: int64(len(data))}

	if len(data) == 0 {
		return nil, stats, nil
	}

	size := chunk.DefaultSize
	if chunkCfg != nil {
		size = chunkCfg.Size
	}

	ranges := chunk.Boundaries(data, size)
	results := make([]chunkResult, len(ranges))

	reporter := newProgressReporter(options.progress)

	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(-1))

	for i, r := range ranges {
		i, r := i, r

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = processChunk(data[r.Start:r.End], schemaCfg)

			reporter.report(ProgressEvent{
				Path:           path,
				BytesProcessed: done.Add(int64(r.Len())),
				TotalBytes:     int64(len(data)),
			})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Stats{}, fmt.Errorf("%s: %w", path, err)
	}

	var fileSchema *schema.Schema

	for _, cr := range results {
		fileSchema = schema.Merge(fileSchema, cr.schema, schemaCfg)
		stats.RecordsProcessed += cr.records
		stats.SkippedLines += cr.skipped
	}

	return fileSchema, stats, nil
}

// processChunk parses every line in chunk and folds its inferred schema
// into a single accumulator, run entirely on the calling goroutine.
func processChunk(data []byte, schemaCfg *schema.Config) chunkResult {
	var result chunkResult

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		if ndjson.IsBlank(line) {
			continue
		}

		v, err := ndjson.Parse(line)
		if err != nil {
			result.skipped++

			continue
		}

		result.records++
		result.schema = schema.Merge(result.schema, schema.Infer(v, schemaCfg), schemaCfg)
	}

	return result
}
