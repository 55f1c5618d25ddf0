package schema

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

// wireSchema is the on-disk representation of a [Schema], mirroring the
// reference implementation's serde-derived layout: a plain struct with the
// type mask as an unsigned integer and string_values as a JSON array
// rather than Go's map-shaped set.
type wireSchema struct {
	TypeMask         TypeMask               `json:"type_mask"`
	ObjectProperties map[string]*wireSchema `json:"object_properties,omitempty"`
	StringValues     []string               `json:"string_values,omitempty"`
	ArrayItems       *wireSchema            `json:"array_items,omitempty"`
}

// MarshalJSON implements [encoding/json.Marshaler], persisting s in a plain
// JSON layout compatible with the reference schema file format, so that a
// schema produced by one run can be loaded and merged into a later run
// (--schema flag).
func (s *Schema) MarshalJSON() ([]byte, error) {
	b, err := gojson.Marshal(s.toWire())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaEncode, err)
	}

	return b, nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler].
func (s *Schema) UnmarshalJSON(data []byte) error {
	var w wireSchema

	if err := gojson.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaDecode, err)
	}

	*s = *w.fromWire()

	return nil
}

func (s *Schema) toWire() *wireSchema {
	if s == nil {
		return nil
	}

	w := &wireSchema{TypeMask: s.TypeMask}

	if s.ObjectProperties != nil {
		w.ObjectProperties = make(map[string]*wireSchema, len(s.ObjectProperties))
		for k, v := range s.ObjectProperties {
			w.ObjectProperties[k] = v.toWire()
		}
	}

	if s.StringValues != nil {
		w.StringValues = make([]string, 0, len(s.StringValues))
		for v := range s.StringValues {
			w.StringValues = append(w.StringValues, v)
		}
	}

	w.ArrayItems = s.ArrayItems.toWire()

	return w
}

func (w *wireSchema) fromWire() *Schema {
	if w == nil {
		return nil
	}

	s := &Schema{TypeMask: w.TypeMask}

	if w.ObjectProperties != nil {
		s.ObjectProperties = make(map[string]*Schema, len(w.ObjectProperties))
		for k, v := range w.ObjectProperties {
			s.ObjectProperties[k] = v.fromWire()
		}
	}

	if w.StringValues != nil {
		s.StringValues = make(map[string]struct{}, len(w.StringValues))
		for _, v := range w.StringValues {
			s.StringValues[v] = struct{}{}
		}
	}

	s.ArrayItems = w.ArrayItems.fromWire()

	return s
}

// LoadSchema decodes a persisted [Schema] previously written by
// [SaveSchema], for use as the starting accumulator of a later run.
func LoadSchema(data []byte) (*Schema, error) {
	var s Schema

	if err := s.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	return &s, nil
}

// SaveSchema encodes s for persistence to the path named by the --schema
// flag.
func SaveSchema(s *Schema) ([]byte, error) {
	if s == nil {
		s = &Schema{}
	}

	return gojson.MarshalIndent(s, "", "  ")
}
