package ndjson

import "errors"

// ErrInvalidRecord indicates a line could not be parsed as a single JSON
// value. Callers typically count and skip such lines rather than aborting
// the whole run: bulk ingestion of heterogeneous feeds routinely meets a
// few malformed lines, and failing the entire run over one bad record
// would make the tool unusable on real corpora.
var ErrInvalidRecord = errors.New("invalid ndjson record")
