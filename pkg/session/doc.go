// Package session holds the client-side authentication snapshot for a
// CastKit application: the signed-in user, whether the process considers
// itself authenticated, and the durable mirror of both that survives
// restarts.
//
// The package has two halves. Store is the in-memory, observable source of
// truth: UI bindings subscribe to it and receive an immutable State snapshot
// on every change. RecordStore is the durable half: a pluggable key-value
// record holding the bearer token, the serialized user and the auth flag as
// one logical unit. Three adapters ship out of the box: in-memory for
// tests, a single JSON file on disk, and Redis for deployments where several
// frontend processes share one session.
//
// # Usage
//
//	store := session.NewStore()
//	unsubscribe := store.Subscribe(func(st session.State) {
//	    render(st)
//	})
//	defer unsubscribe()
//
//	records := session.NewFileRecordStore(path)
//	store.Hydrate(ctx, records) // restore a previous session, if any
//
// Store mutators perform no I/O; the auth coordinator is the only writer of
// the durable record. A corrupt or partially missing record is never an
// error: hydration degrades to the signed-out state.
package session
