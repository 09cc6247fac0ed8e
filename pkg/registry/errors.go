package registry

import "errors"

var (
	ErrSchemaNotFound = errors.New("schema not found")
	ErrInvalidName    = errors.New("invalid schema name")
	ErrNilSchema      = errors.New("schema is nil")
	ErrReadOnly       = errors.New("schema store is read-only")
	ErrStore          = errors.New("schema store failure")
	ErrCorruptSchema  = errors.New("stored schema cannot be decoded")
)
