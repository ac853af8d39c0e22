package redis

import "errors"

var (
	// ErrInvalidConnectionURL indicates the connection string did not parse.
	ErrInvalidConnectionURL = errors.New("redis: invalid connection URL")

	// ErrNotReady indicates the server did not answer a ping within the
	// configured attempts.
	ErrNotReady = errors.New("redis: server not ready")
)
