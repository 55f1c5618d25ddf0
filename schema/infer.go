package schema

import (
	"strconv"

	gojson "github.com/goccy/go-json"
)

// Infer maps one decoded JSON value to a freshly allocated [Schema] leaf.
// v must be the dynamic-typed result of decoding a single JSON document
// with [package ndjson]'s number-preserving decoder: nil, bool,
// gojson.Number, string, []any, or map[string]any.
//
// The returned Schema has no relation to any other Schema until folded
// together with [Merge].
func Infer(v any, cfg *Config) *Schema {
	switch val := v.(type) {
	case nil:
		return New(TypeNull)
	case bool:
		return New(TypeBoolean)
	case gojson.Number:
		return inferNumber(val)
	case string:
		return inferString(val, cfg)
	case []any:
		return inferArray(val, cfg)
	case map[string]any:
		return inferObject(val, cfg)
	default:
		// Unreachable for values produced by ndjson.Parse; treat
		// anything unrecognized as an opaque string rather than panic.
		return New(TypeString)
	}
}

// inferNumber classifies a JSON number as the narrowest of I64, U64, or F64
// that can represent it without loss, without ever coercing the three
// numeric tags to a common type: the space of unsigned integers larger
// than math.MaxInt64 is meaningful and would be lost by widening to F64.
func inferNumber(n gojson.Number) *Schema {
	s := n.String()

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		_ = i

		return New(TypeI64)
	}

	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		_ = u

		return New(TypeU64)
	}

	return New(TypeF64)
}

func inferString(s string, cfg *Config) *Schema {
	if cfg == nil || !cfg.ConsiderStringSet {
		return New(TypeString)
	}

	if len(s) > cfg.MaxStringSetVariantLen {
		return New(TypeString)
	}

	return &Schema{
		TypeMask:     TypeStringSet,
		StringValues: map[string]struct{}{s: {}},
	}
}

func inferArray(arr []any, cfg *Config) *Schema {
	s := New(TypeArray)

	if cfg == nil || !cfg.ConsiderArrayItems {
		return s
	}

	limit := len(arr)
	if cfg.MaxArrayItems > 0 && cfg.MaxArrayItems < limit {
		limit = cfg.MaxArrayItems
	}

	var items *Schema

	for _, elem := range arr[:limit] {
		items = Merge(items, Infer(elem, cfg), cfg)
	}

	s.ArrayItems = items

	return s
}

// inferObject always returns an ordinary [TypeObject] leaf with every
// observed property recorded, regardless of how many keys it has: the
// Config.MaxObjectKeys cutoff only ever applies during [Merge], so that
// one large object observed in isolation still has its full structure
// recorded for its own record.
func inferObject(obj map[string]any, cfg *Config) *Schema {
	props := make(map[string]*Schema, len(obj))

	for key, val := range obj {
		props[key] = Infer(val, cfg)
	}

	return &Schema{
		TypeMask:         TypeObject,
		ObjectProperties: props,
	}
}
