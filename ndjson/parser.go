package ndjson

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
)

// Parse decodes the first JSON value in line. line must not include its
// trailing newline; leading and trailing whitespace are tolerated. Content
// after the first value is not examined, so a valid value followed by other
// text parses as that value.
//
// Unlike a plain decode-to-any, numbers decode as [gojson.Number] rather
// than float64, so integer and floating-point literals remain
// distinguishable downstream.
func Parse(line []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var v any

	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return v, nil
}

// IsBlank reports whether line contains nothing but ASCII whitespace.
// NDJSON readers conventionally skip blank lines rather than treating them
// as malformed records.
func IsBlank(line []byte) bool {
	return len(bytes.TrimSpace(line)) == 0
}
