// Package main provides the CLI entry point for ndjsonschema, a tool that
// infers a JSON Schema from newline-delimited JSON files.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/cab7390/schema/chunk"
	"github.com/cab7390/schema/ingest"
	"github.com/cab7390/schema/log"
	"github.com/cab7390/schema/profile"
	"github.com/cab7390/schema/schema"
	"github.com/cab7390/schema/version"
)

// ErrWriteOutput indicates the emitted JSON Schema or persisted lattice
// could not be written.
var ErrWriteOutput = errors.New("write output")

type flags struct {
	output string
	schema string
	stats  bool
}

func main() {
	schemaCfg := schema.NewConfig()
	// Flag names follow the tool's own CLI surface rather than the
	// package defaults; the underlying fields are unchanged.
	schemaCfg.Flags.MaxStringSetValues = "max-enum-variants"
	schemaCfg.Flags.MaxStringSetVariantLen = "max-enum-variant-len"
	schemaCfg.Flags.ConsiderStringSet = "enums"
	schemaCfg.Flags.ConsiderArrayItems = "array"
	schemaCfg.Flags.MaxArrayItems = "max-array"

	chunkCfg := chunk.NewConfig()
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()

	var f flags

	rootCmd := &cobra.Command{
		Use:   "ndjsonschema [flags] <file.ndjson> [file2.ndjson ...]",
		Short: "Infer a JSON Schema from newline-delimited JSON files",
		Long: `ndjsonschema reads one or more newline-delimited JSON files, infers a
structural schema by sampling every record in parallel, and emits the result
as a draft 2020-12 JSON Schema document.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       formatVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), &f, schemaCfg, chunkCfg, logCfg, profileCfg, args)
		},
	}

	rootCmd.Flags().StringVarP(&f.output, "output", "o", "", "output file path (default: standard output)")
	rootCmd.Flags().StringVar(&f.schema, "schema", "", "persistent schema path: loaded and merged if present, written back on success")
	rootCmd.Flags().BoolVar(&f.stats, "stats", false, "emit throughput statistics to standard error on completion")

	schemaCfg.RegisterFlags(rootCmd.Flags())
	chunkCfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.Flags())
	profileCfg.RegisterFlags(rootCmd.Flags())

	for _, register := range []func(*cobra.Command) error{
		schemaCfg.RegisterCompletions,
		chunkCfg.RegisterCompletions,
		logCfg.RegisterCompletions,
		profileCfg.RegisterCompletions,
	} {
		if err := register(rootCmd); err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func formatVersion() string {
	if version.Version == "" {
		return version.Revision
	}

	return version.Version
}

func run(ctx context.Context, f *flags, schemaCfg *schema.Config, chunkCfg *chunk.Config, logCfg *log.Config, profileCfg *profile.Config, paths []string) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	logger := slog.New(handler)

	profiler := profileCfg.NewProfiler()
	if err := profiler.Start(); err != nil {
		return err
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			logger.Error("stop profiler", slog.Any("error", err))
		}
	}()

	var initial *schema.Schema

	if f.schema != "" {
		initial, err = loadInitialSchema(f.schema)
		if err != nil {
			return err
		}
	}

	publisher := log.NewPublisher()
	defer publisher.Close()

	sub := publisher.Subscribe()
	defer sub.Close()

	go func() {
		for entry := range sub.C() {
			logger.Debug("chunk processed", slog.String("progress", string(entry)))
		}
	}()

	opts := []ingest.Option{ingest.WithProgress(publisher)}
	if initial != nil {
		opts = append(opts, ingest.WithInitialSchema(initial))
	}

	result, err := ingest.Run(ctx, paths, schemaCfg, chunkCfg, opts...)
	if err != nil {
		return err
	}

	if err := writeJSONSchema(f.output, schema.Emit(result.Schema)); err != nil {
		return err
	}

	if f.schema != "" {
		if err := writeSchemaFile(f.schema, result.Schema); err != nil {
			return err
		}
	}

	if f.stats {
		reportStats(result.Stats)
	}

	return nil
}

func loadInitialSchema(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %w", ingest.ErrReadInput, err)
	}

	return schema.LoadSchema(data)
}

func writeJSONSchema(output string, doc any) error {
	out, err := gojson.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	out = append(out, '\n')

	if output == "" || output == "-" {
		if _, err := os.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return nil
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func writeSchemaFile(path string, s *schema.Schema) error {
	data, err := schema.SaveSchema(s)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func reportStats(s ingest.Stats) {
	fmt.Fprintf(os.Stderr, "records=%d skipped=%d bytes=%d elapsed=%s %.2f GiB/s %.0f records/s\n",
		s.RecordsProcessed, s.SkippedLines, s.BytesProcessed, s.Elapsed,
		s.GiBPerSecond(), s.RecordsPerSecond())
}
