package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil pointer.
	ErrNilPointer = errors.New("config: nil pointer")

	// ErrParse wraps failures to parse environment variables into a struct.
	ErrParse = errors.New("config: failed to parse environment")

	// ErrEnvFile wraps failures to read an explicitly requested .env file.
	ErrEnvFile = errors.New("config: failed to load env file")
)
