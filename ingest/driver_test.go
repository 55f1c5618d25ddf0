package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cab7390/schema/chunk"
	"github.com/cab7390/schema/ingest"
	"github.com/cab7390/schema/schema"
	"github.com/cab7390/schema/stringtest"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "input.ndjson")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestRunNoInput(t *testing.T) {
	t.Parallel()

	_, err := ingest.Run(context.Background(), nil, schema.NewConfig(), chunk.NewConfig())
	require.ErrorIs(t, err, ingest.ErrNoInput)
}

func TestRunEmptyFile(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "")

	result, err := ingest.Run(context.Background(), []string{path}, schema.NewConfig(), chunk.NewConfig())
	require.NoError(t, err)
	assert.Nil(t, result.Schema)
	assert.Equal(t, int64(0), result.Stats.RecordsProcessed)
}

func TestRunCountsRecordsAndMergesSchema(t *testing.T) {
	t.Parallel()

	contents := stringtest.JoinLF(
		`{"a": 1, "b": "x"}`,
		`{"a": 2}`,
		`{"a": 3, "c": true}`,
		"",
	)
	path := writeTempFile(t, contents)

	result, err := ingest.Run(context.Background(), []string{path}, schema.NewConfig(), chunk.NewConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Stats.RecordsProcessed)
	assert.Equal(t, int64(0), result.Stats.SkippedLines)
	require.NotNil(t, result.Schema)

	props := result.Schema.ObjectProperties
	require.Contains(t, props, "a")
	require.Contains(t, props, "b")
	require.Contains(t, props, "c")

	assert.False(t, props["a"].TypeMask.Has(schema.TypeAbsent), "a is present in every record")
	assert.True(t, props["b"].TypeMask.Has(schema.TypeAbsent), "b is missing from some records")
	assert.True(t, props["c"].TypeMask.Has(schema.TypeAbsent), "c is missing from some records")
}

func TestRunSkipsMalformedLines(t *testing.T) {
	t.Parallel()

	contents := stringtest.JoinLF(`{"a": 1}`, "not json", `{"a": 2}`, "")
	path := writeTempFile(t, contents)

	result, err := ingest.Run(context.Background(), []string{path}, schema.NewConfig(), chunk.NewConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Stats.RecordsProcessed)
	assert.Equal(t, int64(1), result.Stats.SkippedLines)
}

func TestRunIsInvariantToChunkSize(t *testing.T) {
	t.Parallel()

	var lines string
	for i := 0; i < 500; i++ {
		lines += `{"i": ` + strconv.Itoa(i) + `, "tag": "v"}` + "\n"
	}

	path := writeTempFile(t, lines)

	var reference *schema.Schema

	for _, size := range []int{8, 64, 512, 4096, 1 << 20} {
		cfg := chunk.NewConfig()
		cfg.Size = size

		result, err := ingest.Run(context.Background(), []string{path}, schema.NewConfig(), cfg)
		require.NoError(t, err)
		assert.Equal(t, int64(500), result.Stats.RecordsProcessed)

		if reference == nil {
			reference = result.Schema
		} else {
			assert.True(t, reference.Equal(result.Schema), "chunk size=%d must not change the inferred schema", size)
		}
	}
}

func TestRunMultipleFilesAccumulate(t *testing.T) {
	t.Parallel()

	pathA := writeTempFile(t, "{\"a\": 1}\n")
	pathB := writeTempFile(t, "{\"b\": true}\n")

	result, err := ingest.Run(context.Background(), []string{pathA, pathB}, schema.NewConfig(), chunk.NewConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Stats.RecordsProcessed)
	require.Contains(t, result.Schema.ObjectProperties, "a")
	require.Contains(t, result.Schema.ObjectProperties, "b")
}

func TestRunWithInitialSchema(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "{\"a\": 1}\n")

	seed := schema.New(schema.TypeObject)
	seed.ObjectProperties = map[string]*schema.Schema{
		"seeded": schema.New(schema.TypeBoolean),
	}

	result, err := ingest.Run(context.Background(), []string{path}, schema.NewConfig(), chunk.NewConfig(),
		ingest.WithInitialSchema(seed))
	require.NoError(t, err)

	require.Contains(t, result.Schema.ObjectProperties, "seeded")
	require.Contains(t, result.Schema.ObjectProperties, "a")
}
