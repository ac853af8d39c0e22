package guard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlist/castkit/pkg/guard"
	"github.com/castlist/castkit/pkg/session"
)

func memberState(isMember bool) session.State {
	return session.State{
		User:            &session.User{ID: "u1", Email: "ada@example.com", IsMember: isMember},
		IsAuthenticated: true,
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	anonymous := session.State{}

	tests := []struct {
		name  string
		state session.State
		level guard.AccessLevel
		want  guard.Decision
	}{
		{"public admits anonymous", anonymous, guard.AccessPublic, guard.Allow},
		{"public admits members", memberState(true), guard.AccessPublic, guard.Allow},
		{"authenticated rejects anonymous", anonymous, guard.AccessAuthenticated, guard.RedirectToLogin},
		{"authenticated admits non-member", memberState(false), guard.AccessAuthenticated, guard.Allow},
		{"member level rejects anonymous to login", anonymous, guard.AccessMember, guard.RedirectToLogin},
		{"member level rejects non-member to membership", memberState(false), guard.AccessMember, guard.RedirectToMembership},
		{"member level admits member", memberState(true), guard.AccessMember, guard.Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, guard.Evaluate(tt.state, tt.level))
		})
	}
}

func TestGroup_Middleware(t *testing.T) {
	t.Parallel()

	newRouter := func(store *session.Store) http.Handler {
		g := guard.New(store)
		r := chi.NewRouter()
		ok := func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ok")) }
		g.Public(r, func(r chi.Router) { r.Get("/", ok) })
		g.Authenticated(r, func(r chi.Router) { r.Get("/dashboard", ok) })
		g.Members(r, func(r chi.Router) { r.Get("/community", ok) })
		return r
	}

	get := func(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
		t.Helper()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("anonymous visitor", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		router := newRouter(store)

		assert.Equal(t, http.StatusOK, get(t, router, "/").Code)

		rec := get(t, router, "/dashboard")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		rec = get(t, router, "/community")
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("signed-in non-member", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		store.SetUser(session.User{ID: "u1", IsMember: false})
		router := newRouter(store)

		assert.Equal(t, http.StatusOK, get(t, router, "/dashboard").Code)

		rec := get(t, router, "/community")
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/membership", rec.Header().Get("Location"))
	})

	t.Run("evaluates the latest snapshot", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		router := newRouter(store)

		assert.Equal(t, http.StatusSeeOther, get(t, router, "/dashboard").Code)

		store.SetUser(session.User{ID: "u1"})
		assert.Equal(t, http.StatusOK, get(t, router, "/dashboard").Code)

		store.ClearUser()
		assert.Equal(t, http.StatusSeeOther, get(t, router, "/dashboard").Code)
	})

	t.Run("custom redirect paths", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		g := guard.New(store,
			guard.WithLoginPath("/signin"),
			guard.WithMembershipPath("/join"),
		)
		r := chi.NewRouter()
		g.Members(r, func(r chi.Router) {
			r.Get("/feed", func(w http.ResponseWriter, _ *http.Request) {})
		})

		rec := get(t, r, "/feed")
		assert.Equal(t, "/signin", rec.Header().Get("Location"))

		store.SetUser(session.User{ID: "u1", IsMember: false})
		rec = get(t, r, "/feed")
		assert.Equal(t, "/join", rec.Header().Get("Location"))
	})
}
