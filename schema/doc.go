// Package schema infers a structural JSON Schema from a corpus of JSON
// values on a best-effort basis. It detects the shapes actually observed
// across many records and merges them into a single lattice node.
//
// The generated schemas are designed to describe, not to validate -- we
// never assume any one record is a complete representation of the corpus.
// The goal is to produce a schema that documents the union of shapes seen,
// degrading gracefully (open string, opaque object) once a shape grows too
// heterogeneous to describe structurally.
//
// # Design Principles
//
// Three principles guide every design decision in this package:
//
//  1. Union semantics: every record's inferred schema is folded into an
//     accumulator with [Merge]. The result describes the union of all
//     records seen, never just the first or the most common shape.
//
//  2. Bounded cardinality: object property sets, string enum sets, and
//     array item sampling are all capped by [Config]. Crossing a bound
//     degrades the node to a coarser type ([TypeLargeObject], open
//     [TypeString]) rather than growing without limit.
//
//  3. Commutative, associative merge: [Merge] must form a monoid so a
//     parallel fold-reduce over chunks of a corpus produces the same
//     result regardless of reduction order. See merge.go for the
//     per-rule reasoning.
//
// # Pipeline
//
// [Infer] maps one parsed JSON value (as produced by package ndjson) to a
// freshly allocated [Schema] leaf. [Merge] folds two [Schema] values into
// their lattice join, in place on the left operand. [Emit] renders a
// [Schema] as a [*jsonschema.Schema] document (draft 2020-12). [Config]
// bridges CLI flags to inference and merge behavior following the
// Flags/Config/RegisterFlags/RegisterCompletions/NewX pattern used
// throughout this repository.
//
// # Basic Usage
//
//	cfg := schema.NewConfig()
//	var acc *schema.Schema
//	for _, v := range values {
//		acc = schema.Merge(acc, schema.Infer(v, cfg), cfg)
//	}
//	doc := schema.Emit(acc)
//
// [jsonschema.Schema]: https://pkg.go.dev/github.com/google/jsonschema-go/jsonschema#Schema
package schema
