package session

import "errors"

var (
	// ErrRecordNotFound indicates no durable session record is stored.
	ErrRecordNotFound = errors.New("session.record_not_found")

	// ErrRecordCorrupt indicates the stored record could not be decoded.
	ErrRecordCorrupt = errors.New("session.record_corrupt")
)
