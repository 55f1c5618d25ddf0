// Package ingest drives parallel schema inference over one or more NDJSON
// files: memory-mapping each file, splitting it into line-aligned chunks
// with package chunk, parsing and inferring each record with packages
// ndjson and schema, and folding the results into a single [Result].
//
// [Run] is the package's only entry point. Per-chunk work runs on a
// bounded goroutine pool sized to GOMAXPROCS; chunk results are reduced in
// file order, and files are reduced in argument order, but because
// [schema.Merge] is commutative and associative the final schema does not
// depend on either order.
package ingest
