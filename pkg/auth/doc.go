// Package auth orchestrates the client-side authentication lifecycle. The
// Coordinator is the only component that calls the platform's auth endpoints
// and the only writer of the durable session record; everything else reads
// the session through the store it keeps in sync.
//
// Login and signup follow one pipeline: exchange credentials for a bearer
// token, fetch the canonical account record, translate it into the client
// user shape, persist the durable record, then publish the user to the
// session store. The record is always written before the store notification,
// so a subscriber reacting to a store change can assume durable storage
// already reflects it.
//
// Remote failures never escape as raw transport or decode errors: login and
// signup return a normalized sentinel, and a stored token the backend no
// longer accepts results in a full logout during InitializeAuth rather than
// a half-authenticated UI.
//
// Concurrent operations are not mutually exclusive; whichever finishes last
// wins, with one exception: a logout always defeats any in-flight login or
// refresh. Each round-trip captures a session epoch before touching the
// network and its write-back is discarded if the epoch moved on.
package auth
