package session

import (
	"context"
	"encoding/json"
)

// Record is the durable mirror of the session: the opaque bearer token, the
// serialized user and the auth flag. The three pieces are one logical unit:
// stores persist and clear them together, and readers treat any missing or
// corrupt piece as "not authenticated".
type Record struct {
	Token         string          `json:"token"`
	User          json.RawMessage `json:"user"`
	Authenticated bool            `json:"authenticated"`
}

// NewRecord serializes u into a complete record for the given token.
func NewRecord(token string, u User) (Record, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return Record{}, err
	}
	return Record{Token: token, User: raw, Authenticated: true}, nil
}

// Complete reports whether all three pieces are present.
func (r Record) Complete() bool {
	return r.Token != "" && len(r.User) > 0 && r.Authenticated
}

// RecordStore persists the durable session record. Implementations must
// write and clear the record atomically as a unit; Load returns
// ErrRecordNotFound when nothing is stored.
type RecordStore interface {
	// Save replaces the stored record.
	Save(ctx context.Context, rec Record) error

	// Load returns the stored record. A record that was only partially
	// written by an older client may come back incomplete; callers are
	// expected to check Complete.
	Load(ctx context.Context) (Record, error)

	// Clear removes the record. Clearing an absent record is not an error.
	Clear(ctx context.Context) error
}
