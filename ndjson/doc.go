// Package ndjson decodes newline-delimited JSON records into the dynamic
// value shapes package schema expects: nil, bool, [gojson.Number], string,
// []any, and map[string]any.
//
// Decoding preserves the distinction between integer and floating-point
// literals by decoding numbers as [gojson.Number] instead of collapsing
// them to float64 the way a default decode-to-any does. Package schema
// later splits Number into signed, unsigned, or floating-point based on
// its literal text.
package ndjson
