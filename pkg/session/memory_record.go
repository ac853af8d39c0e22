package session

import (
	"context"
	"sync"
)

// MemoryRecordStore keeps the record in process memory. Intended for tests
// and ephemeral tooling where sessions should not outlive the process.
type MemoryRecordStore struct {
	mu     sync.RWMutex
	rec    Record
	stored bool
}

// NewMemoryRecordStore creates an empty in-memory record store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{}
}

func (m *MemoryRecordStore) Save(ctx context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Copy the raw user bytes so callers cannot mutate the stored record.
	cp := rec
	cp.User = append([]byte(nil), rec.User...)
	m.rec = cp
	m.stored = true
	return nil
}

func (m *MemoryRecordStore) Load(ctx context.Context) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.stored {
		return Record{}, ErrRecordNotFound
	}
	cp := m.rec
	cp.User = append([]byte(nil), m.rec.User...)
	return cp, nil
}

func (m *MemoryRecordStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = Record{}
	m.stored = false
	return nil
}
