package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/castlist/castkit/pkg/apiclient"
	"github.com/castlist/castkit/pkg/sanitizer"
	"github.com/castlist/castkit/pkg/session"
	"github.com/castlist/castkit/pkg/validator"
)

// Coordinator keeps the session store and the durable session record
// consistent with the platform's auth API. Construct one per process and
// share it; all methods are safe for concurrent use.
type Coordinator struct {
	api     *apiclient.Client
	store   *session.Store
	records session.RecordStore
	logger  *slog.Logger
	now     func() time.Time

	// mu serializes write-backs against logout; epoch invalidates results
	// of round-trips that a later logout overtook.
	mu    sync.Mutex
	epoch uint64
}

// Option configures a Coordinator during construction.
type Option func(*Coordinator)

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the time source used to stamp CreatedAt on user
// records the backend serves without one.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCoordinator wires the API client, the in-memory store and the durable
// record store together.
func NewCoordinator(api *apiclient.Client, store *session.Store, records session.RecordStore, opts ...Option) *Coordinator {
	c := &Coordinator{
		api:     api,
		store:   store,
		records: records,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SignupParams carries the signup form fields.
type SignupParams struct {
	Email           string
	Password        string
	PasswordConfirm string
	Name            string
	AcceptTerms     bool
}

// Login exchanges credentials for a session. On success the durable record
// is written, the store notified and the signed-in user returned. Any remote
// failure is logged and normalized to ErrLoginFailed; a logout racing this
// call wins, in which case Login returns no user and no error.
func (c *Coordinator) Login(ctx context.Context, email, password string) (*session.User, error) {
	email = sanitizer.NormalizeEmail(email)
	epoch := c.currentEpoch()

	if _, err := c.api.Login(ctx, email, password); err != nil {
		c.logger.Error("login failed", slog.String("email", email), slog.Any("error", err))
		return nil, errors.Join(ErrLoginFailed, err)
	}
	user, err := c.fetchAndCommit(ctx, epoch)
	if err != nil {
		c.logger.Error("login failed fetching account", slog.String("email", email), slog.Any("error", err))
		return nil, errors.Join(ErrLoginFailed, err)
	}
	return user, nil
}

// Signup validates the form locally, then registers the account and signs
// in. Validation failures are returned synchronously as
// validator.ValidationErrors before any network call; remote failures are
// normalized to ErrSignupFailed.
func (c *Coordinator) Signup(ctx context.Context, p SignupParams) (*session.User, error) {
	p.Email = sanitizer.NormalizeEmail(p.Email)
	p.Name = sanitizer.Apply(p.Name, sanitizer.Trim, sanitizer.CollapseWhitespace)

	if err := validator.Apply(
		validator.ValidEmail("email", p.Email),
		validator.Required("name", p.Name),
		validator.MinLen("password", p.Password, 8),
		validator.Matches("password_confirm", p.PasswordConfirm, p.Password),
		validator.Accepted("terms", p.AcceptTerms),
	); err != nil {
		return nil, err
	}

	epoch := c.currentEpoch()
	if _, err := c.api.Signup(ctx, p.Email, p.Password, p.Name); err != nil {
		c.logger.Error("signup failed", slog.String("email", p.Email), slog.Any("error", err))
		return nil, errors.Join(ErrSignupFailed, err)
	}
	user, err := c.fetchAndCommit(ctx, epoch)
	if err != nil {
		c.logger.Error("signup failed fetching account", slog.String("email", p.Email), slog.Any("error", err))
		return nil, errors.Join(ErrSignupFailed, err)
	}
	return user, nil
}

// Logout tears the session down: the API client forgets its token, the
// durable record is cleared and the store reset. Safe to call when already
// signed out. Any login or refresh still in flight when Logout runs is
// invalidated and will not write its result back.
func (c *Coordinator) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.api.ClearToken()

	err := c.records.Clear(ctx)
	if err != nil {
		c.logger.Error("clearing session record failed", slog.Any("error", err))
	}
	c.store.ClearUser()
	return err
}

// UpdateUser merges the patch into the cached user, rewrites the durable
// record and notifies the store. Callers patching membership optimistically
// (e.g. right after a payment) should follow up with RefreshUser to confirm
// against the backend. No-op when signed out.
func (c *Coordinator) UpdateUser(ctx context.Context, p session.Patch) (*session.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.store.State()
	if st.User == nil {
		return nil, nil
	}
	merged := p.Apply(*st.User)

	rec, err := c.records.Load(ctx)
	if err == nil {
		updated, recErr := session.NewRecord(rec.Token, merged)
		if recErr == nil {
			recErr = c.records.Save(ctx, updated)
		}
		if recErr != nil {
			c.logger.Error("persisting user update failed", slog.Any("error", recErr))
		}
	}

	c.store.UpdateUser(p)
	return &merged, nil
}

// RefreshUser re-fetches the canonical account record and replaces the
// cached user, reconciling any optimistic local patches. No-op when no
// token is cached.
func (c *Coordinator) RefreshUser(ctx context.Context) (*session.User, error) {
	if c.api.Token() == "" {
		return nil, nil
	}
	return c.fetchAndCommit(ctx, c.currentEpoch())
}

// CurrentUser returns the cached user without a network call.
func (c *Coordinator) CurrentUser() *session.User {
	return c.store.State().User
}

// IsAuthenticated checks the durable record rather than in-memory state,
// since another process sharing the record store may have cleared it. Both
// the token and the auth flag must be present.
func (c *Coordinator) IsAuthenticated(ctx context.Context) bool {
	rec, err := c.records.Load(ctx)
	return err == nil && rec.Token != "" && rec.Authenticated
}

// InitializeAuth restores a previous session at process start. A stored
// token is validated against the backend; success rehydrates the store and
// record exactly as Login does, while a rejected or unverifiable token
// forces a full logout so the UI never starts falsely authenticated.
// Returns no user and no error when nothing usable is stored.
func (c *Coordinator) InitializeAuth(ctx context.Context) (*session.User, error) {
	rec, err := c.records.Load(ctx)
	if err != nil || rec.Token == "" {
		return nil, nil
	}

	epoch := c.currentEpoch()
	c.api.SetToken(rec.Token)

	user, err := c.fetchAndCommit(ctx, epoch)
	if err != nil {
		c.logger.Warn("stored credential rejected, logging out", slog.Any("error", err))
		_ = c.Logout(ctx)
		return nil, nil
	}
	return user, nil
}

// fetchAndCommit fetches the canonical account record and, if the session
// epoch is still current, persists it and publishes it to the store. A nil,
// nil return means a concurrent logout won and the result was discarded.
func (c *Coordinator) fetchAndCommit(ctx context.Context, epoch uint64) (*session.User, error) {
	acct, err := c.api.Me(ctx)
	if err != nil {
		return nil, err
	}
	user := c.translate(acct)

	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		c.api.ClearToken()
		c.logger.Info("discarding auth result overtaken by logout", slog.String("user_id", user.ID))
		return nil, nil
	}

	rec, err := session.NewRecord(c.api.Token(), user)
	if err != nil {
		return nil, err
	}
	// Record first, store second: subscribers may read durable state.
	if err := c.records.Save(ctx, rec); err != nil {
		c.logger.Error("persisting session record failed", slog.Any("error", err))
	}
	c.store.SetUser(user)
	return &user, nil
}

// translate maps the backend account shape onto the client user shape,
// stamping CreatedAt client-side since the backend does not serve one.
func (c *Coordinator) translate(acct *apiclient.AccountResponse) session.User {
	return session.User{
		ID:               acct.ID,
		Email:            acct.Email,
		Name:             acct.Name,
		IsMember:         acct.IsMember,
		MembershipType:   session.MembershipType(acct.MembershipType),
		ProfileCompleted: acct.ProfileCompleted,
		CreatedAt:        c.now().UTC(),
	}
}

func (c *Coordinator) currentEpoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}
