// Package guard gates navigation by authentication and membership tier.
//
// Evaluate is the whole policy: a pure function from a session snapshot and
// a required access level to a decision. Middleware applies it per request
// against the store's latest snapshot (never a captured copy) and issues the
// configured redirects, and Group wires public, authenticated and
// member-only route groups on a chi router for server-rendered frontends
// that embed the SDK.
//
//	g := guard.New(store)
//	r := chi.NewRouter()
//	g.Public(r, func(r chi.Router) { r.Get("/", home) })
//	g.Authenticated(r, func(r chi.Router) { r.Get("/dashboard", dashboard) })
//	g.Members(r, func(r chi.Router) { r.Get("/community", community) })
package guard
