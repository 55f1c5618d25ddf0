// Package chunk splits a byte slice into newline-aligned ranges suitable
// for independent, parallel processing.
//
// A chunk boundary is never allowed to fall in the middle of a line: each
// [Range] always starts immediately after a newline (or at offset 0) and
// ends immediately after a newline (or at the end of the data). This is
// what lets package ingest hand each chunk to a different goroutine
// without any record ever being split across two workers.
package chunk
