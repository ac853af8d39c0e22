package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config: destination must be a non-nil pointer")

	// ErrParsingConfig wraps env tag parsing failures.
	ErrParsingConfig = errors.New("config: failed to parse environment")

	// ErrLoadingEnvFile wraps .env file read failures.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)
