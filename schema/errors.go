package schema

import "errors"

// Sentinel errors returned by this package and its callers.
var (
	// ErrInvalidOption indicates an invalid [Config] value, such as an
	// unrecognized flag value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrSchemaDecode indicates a persisted schema file could not be
	// decoded as a valid lattice.
	ErrSchemaDecode = errors.New("decode persisted schema")
	// ErrSchemaEncode indicates a schema could not be encoded for
	// persistence or emission.
	ErrSchemaEncode = errors.New("encode schema")
)
