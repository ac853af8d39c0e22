package session

import (
	"context"
	"encoding/json"
	"sync"
)

// State is an immutable snapshot of the authentication state. The User
// pointer refers to a copy owned by the snapshot, never to live store state.
//
// Invariant: IsAuthenticated implies User != nil.
type State struct {
	User            *User
	IsAuthenticated bool
}

// Listener receives the new snapshot after every state change.
type Listener func(State)

// Store is the single in-memory source of truth for session state. It is
// safe for concurrent use; construct one per process (or per test) instead
// of sharing a package-level singleton.
type Store struct {
	mu        sync.RWMutex
	user      *User
	listeners []storeListener
	nextID    uint64
}

type storeListener struct {
	id uint64
	fn Listener
}

// NewStore creates an empty, signed-out store.
func NewStore() *Store {
	return &Store{}
}

// State returns the current snapshot. The returned User is a copy; mutating
// it does not affect the store.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// snapshot must be called with at least the read lock held.
func (s *Store) snapshot() State {
	if s.user == nil {
		return State{}
	}
	u := *s.user
	return State{User: &u, IsAuthenticated: true}
}

// Subscribe registers a listener invoked with the new snapshot on every
// state change, in registration order, exactly once per change. The returned
// function removes the listener; it is safe to call more than once.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, storeListener{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetUser stores a copy of u and marks the session authenticated.
func (s *Store) SetUser(u User) {
	s.mu.Lock()
	s.user = &u
	st, fns := s.snapshot(), s.pendingListeners()
	s.mu.Unlock()

	notify(fns, st)
}

// ClearUser resets the store to the signed-out state.
func (s *Store) ClearUser() {
	s.mu.Lock()
	s.user = nil
	st, fns := s.snapshot(), s.pendingListeners()
	s.mu.Unlock()

	notify(fns, st)
}

// UpdateUser merges the patch into the current user and notifies listeners.
// It is a no-op when no user is set; callers must not rely on it creating
// one.
func (s *Store) UpdateUser(p Patch) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	merged := p.Apply(*s.user)
	s.user = &merged
	st, fns := s.snapshot(), s.pendingListeners()
	s.mu.Unlock()

	notify(fns, st)
}

// Hydrate restores state from the durable record. The record is treated as
// one logical unit: a missing token, unset auth flag or unparseable user all
// degrade to the signed-out state rather than an error. Listeners observe
// the outcome exactly once.
func (s *Store) Hydrate(ctx context.Context, rs RecordStore) {
	rec, err := rs.Load(ctx)
	if err != nil || !rec.Complete() {
		s.ClearUser()
		return
	}

	var u User
	if err := json.Unmarshal(rec.User, &u); err != nil {
		s.ClearUser()
		return
	}
	s.SetUser(u)
}

// pendingListeners must be called with the write lock held. The slice copy
// pins the listener set for this change so concurrent (un)subscribes cannot
// cause missed or duplicate deliveries.
func (s *Store) pendingListeners() []storeListener {
	fns := make([]storeListener, len(s.listeners))
	copy(fns, s.listeners)
	return fns
}

func notify(fns []storeListener, st State) {
	for _, l := range fns {
		l.fn(st)
	}
}
