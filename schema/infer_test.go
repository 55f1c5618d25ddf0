package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cab7390/schema/schema"
)

func TestInferPrimitives(t *testing.T) {
	t.Parallel()

	cfg := schema.NewConfig()

	tcs := map[string]struct {
		value any
		want  schema.TypeMask
	}{
		"null":   {nil, schema.TypeNull},
		"bool":   {true, schema.TypeBoolean},
		"i64":    {parseNumber(t, "-5"), schema.TypeI64},
		"u64":    {parseNumber(t, "18446744073709551615"), schema.TypeU64},
		"f64":    {parseNumber(t, "1.5"), schema.TypeF64},
		"array":  {[]any{}, schema.TypeArray},
		"object": {map[string]any{}, schema.TypeObject},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := schema.Infer(tc.value, cfg)
			assert.Equal(t, tc.want, got.TypeMask)
		})
	}
}

func TestInferStringWithoutSet(t *testing.T) {
	t.Parallel()

	cfg := schema.NewConfig()

	got := schema.Infer("hello", cfg)
	assert.Equal(t, schema.TypeString, got.TypeMask)
	assert.Nil(t, got.StringValues)
}

func TestInferStringSet(t *testing.T) {
	t.Parallel()

	cfg := schema.NewConfig()
	cfg.ConsiderStringSet = true

	got := schema.Infer("hello", cfg)
	assert.True(t, got.TypeMask.Has(schema.TypeStringSet))
	assert.Contains(t, got.StringValues, "hello")

	cfg.MaxStringSetVariantLen = 2
	long := schema.Infer("hello", cfg)
	assert.Equal(t, schema.TypeString, long.TypeMask)
}

func TestInferObjectProperties(t *testing.T) {
	t.Parallel()

	cfg := schema.NewConfig()

	got := schema.Infer(map[string]any{
		"name": "bob",
		"age":  parseNumber(t, "42"),
	}, cfg)

	require.True(t, got.TypeMask.Has(schema.TypeObject))
	require.Contains(t, got.ObjectProperties, "name")
	require.Contains(t, got.ObjectProperties, "age")
	assert.Equal(t, schema.TypeString, got.ObjectProperties["name"].TypeMask)
	assert.Equal(t, schema.TypeI64, got.ObjectProperties["age"].TypeMask)
}

func TestInferObjectIgnoresKeyBoundInIsolation(t *testing.T) {
	t.Parallel()

	// The max-object-keys cutoff only ever applies during Merge: a single
	// object observed on its own must keep its full structure, however
	// many keys it has.
	cfg := schema.NewConfig()
	cfg.MaxObjectKeys = 1

	got := schema.Infer(map[string]any{
		"a": parseNumber(t, "1"),
		"b": parseNumber(t, "2"),
	}, cfg)

	assert.True(t, got.TypeMask.Has(schema.TypeObject))
	assert.False(t, got.TypeMask.Has(schema.TypeLargeObject))
	require.Contains(t, got.ObjectProperties, "a")
	require.Contains(t, got.ObjectProperties, "b")
}

func TestInferArrayItemsDisabledByDefault(t *testing.T) {
	t.Parallel()

	cfg := schema.NewConfig()

	got := schema.Infer([]any{parseNumber(t, "1"), "x"}, cfg)
	assert.Equal(t, schema.TypeArray, got.TypeMask)
	assert.Nil(t, got.ArrayItems)
}

func TestInferArrayItemsEnabled(t *testing.T) {
	t.Parallel()

	cfg := schema.NewConfig()
	cfg.ConsiderArrayItems = true

	got := schema.Infer([]any{parseNumber(t, "1"), "x"}, cfg)
	require.NotNil(t, got.ArrayItems)
	assert.True(t, got.ArrayItems.TypeMask.Has(schema.TypeI64))
	assert.True(t, got.ArrayItems.TypeMask.Has(schema.TypeString))
}

func TestInferArrayItemsRespectsSampleLimit(t *testing.T) {
	t.Parallel()

	cfg := schema.NewConfig()
	cfg.ConsiderArrayItems = true
	cfg.MaxArrayItems = 1

	got := schema.Infer([]any{parseNumber(t, "1"), "x", true}, cfg)
	require.NotNil(t, got.ArrayItems)
	assert.Equal(t, schema.TypeI64, got.ArrayItems.TypeMask)
}
