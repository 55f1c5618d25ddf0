package schema

import (
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
)

// JSON Schema "type" keyword values.
const (
	typeBoolean = "boolean"
	typeNumber  = "number"
	typeString  = "string"
	typeArray   = "array"
	typeObject  = "object"
	typeNull    = "null"
)

// largeObjectDescription is set on an emitted schema whose source node
// degraded to [TypeLargeObject]: its property shapes were discarded once
// the union of observed keys grew past Config.MaxObjectKeys.
const largeObjectDescription = "Large object"

// Emit renders s as a draft 2020-12 [*jsonschema.Schema] document. A nil s
// (no value ever observed) renders as the "false" schema, matching JSON
// Schema's convention for an uninhabited type.
func Emit(s *Schema) *jsonschema.Schema {
	if s == nil {
		return falseSchema()
	}

	out := &jsonschema.Schema{
		Schema: "https://json-schema.org/draft/2020-12/schema",
	}

	types := emitTypes(s.TypeMask)
	sort.Strings(types)

	switch len(types) {
	case 0:
		// Only TypeAbsent, or no bit at all: no "type" keyword is emitted.
	case 1:
		out.Type = types[0]
	default:
		out.Types = types
	}

	if s.TypeMask.Has(TypeLargeObject) {
		out.Description = largeObjectDescription
	}

	if s.TypeMask.Has(TypeStringSet) && len(s.StringValues) > 0 {
		values := make([]string, 0, len(s.StringValues))
		for v := range s.StringValues {
			values = append(values, v)
		}

		sort.Strings(values)

		enum := make([]any, len(values))
		for i, v := range values {
			enum[i] = v
		}

		out.AnyOf = []*jsonschema.Schema{{Type: typeString, Enum: enum}}
	}

	if s.TypeMask.Has(TypeObject) && s.ObjectProperties != nil {
		emitObjectProperties(out, s)
	}

	if s.TypeMask.Has(TypeArray) && s.ArrayItems != nil {
		out.Items = Emit(s.ArrayItems)
	}

	return out
}

// emitTypes maps every base-type bit in mask to its JSON Schema "type"
// string. TypeAbsent and TypeStringSet never contribute a type string of
// their own: absence is represented by omission from Required, and a
// string set is still fundamentally a "string". TypeLargeObject renders as
// "object", like TypeObject.
func emitTypes(mask TypeMask) []string {
	var types []string

	if mask.Has(TypeString) || mask.Has(TypeStringSet) {
		types = append(types, typeString)
	}

	if mask.Has(TypeBoolean) {
		types = append(types, typeBoolean)
	}

	if mask.Has(TypeNull) {
		types = append(types, typeNull)
	}

	if mask.Has(TypeI64) || mask.Has(TypeU64) || mask.Has(TypeF64) {
		types = append(types, typeNumber)
	}

	if mask.Has(TypeArray) {
		types = append(types, typeArray)
	}

	if mask.Has(TypeObject) || mask.Has(TypeLargeObject) {
		types = append(types, typeObject)
	}

	return dedupeStrings(types)
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))

	out := in[:0]

	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}

		seen[s] = struct{}{}

		out = append(out, s)
	}

	return out
}

// emitObjectProperties populates out.Properties and out.Required from s's
// object properties. A property is required iff it was never observed
// absent, i.e. [TypeAbsent] is not set on its child schema.
func emitObjectProperties(out *jsonschema.Schema, s *Schema) {
	out.Properties = make(map[string]*jsonschema.Schema, len(s.ObjectProperties))

	names := make([]string, 0, len(s.ObjectProperties))
	for name := range s.ObjectProperties {
		names = append(names, name)
	}

	sort.Strings(names)

	var required []string

	for _, name := range names {
		prop := s.ObjectProperties[name]
		out.Properties[name] = Emit(prop)
		out.PropertyOrder = append(out.PropertyOrder, name)

		if !prop.TypeMask.Has(TypeAbsent) {
			required = append(required, name)
		}
	}

	if len(required) > 0 {
		out.Required = required
	}
}

// falseSchema returns the JSON Schema "false" document: a schema that no
// value validates against, used to describe a property whose type was
// never observed in any record.
func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
