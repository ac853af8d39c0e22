package guard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/castlist/castkit/pkg/session"
)

// Group builds guarded route groups over one session store.
type Group struct {
	store          *session.Store
	loginPath      string
	membershipPath string
}

// Option configures a Group during construction.
type Option func(*Group)

// WithLoginPath overrides where unauthenticated visitors are sent.
func WithLoginPath(path string) Option {
	return func(g *Group) {
		if path != "" {
			g.loginPath = path
		}
	}
}

// WithMembershipPath overrides where non-members are sent.
func WithMembershipPath(path string) Option {
	return func(g *Group) {
		if path != "" {
			g.membershipPath = path
		}
	}
}

// New creates a Group reading session state from store.
func New(store *session.Store, opts ...Option) *Group {
	g := &Group{
		store:          store,
		loginPath:      "/login",
		membershipPath: "/membership",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Middleware gates every request through the group's policy at the given
// level. The store is consulted per request, so a login or logout between
// navigations takes effect immediately.
func (g *Group) Middleware(level AccessLevel) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch Evaluate(g.store.State(), level) {
			case RedirectToLogin:
				http.Redirect(w, r, g.loginPath, http.StatusSeeOther)
			case RedirectToMembership:
				http.Redirect(w, r, g.membershipPath, http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// Public registers routes that admit everyone.
func (g *Group) Public(r chi.Router, fn func(chi.Router)) {
	r.Group(fn)
}

// Authenticated registers routes requiring a signed-in user.
func (g *Group) Authenticated(r chi.Router, fn func(chi.Router)) {
	r.Group(func(r chi.Router) {
		r.Use(g.Middleware(AccessAuthenticated))
		fn(r)
	})
}

// Members registers routes requiring an active membership.
func (g *Group) Members(r chi.Router, fn func(chi.Router)) {
	r.Group(func(r chi.Router) {
		r.Use(g.Middleware(AccessMember))
		fn(r)
	})
}
