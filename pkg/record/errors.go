package record

import "errors"

// Schema construction and decoding errors. Validation failures are not
// reported through these; see Violations.
var (
	// ErrEmptyFieldName is returned when a field spec has no name.
	ErrEmptyFieldName = errors.New("field name is empty")

	// ErrDuplicateField is returned when two field specs share a name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrUnknownKind is returned for a kind outside the closed set.
	ErrUnknownKind = errors.New("unknown field kind")

	// ErrInvalidSchema wraps failures to decode a schema document.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported schema file format")

	// ErrInvalidRecord is returned by DecodeJSON when the input is not a
	// single JSON object.
	ErrInvalidRecord = errors.New("invalid record")
)
