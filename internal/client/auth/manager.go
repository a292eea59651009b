// Package auth owns the in-memory authentication state: the user/token pair,
// the startup loading flag, and the login/signup/logout transitions. The
// session cache is its durable mirror; remote responses always win over
// cached state.
package auth

import (
	"context"
	"sync"

	"github.com/duckycart/companion/internal/client/models"
	"github.com/duckycart/companion/internal/client/session"
	"github.com/duckycart/companion/internal/logging"
)

// API is the slice of the remote client the manager needs.
type API interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
}

// State is a point-in-time snapshot for observers such as the navigation
// guard. IsLoggedIn is derived from token presence, never stored.
type State struct {
	User       *models.User
	IsLoggedIn bool
	IsLoading  bool
}

// Manager is constructed once at process start and passed by reference to
// consumers. It guards its fields with a mutex so observers and command
// handlers can share it.
type Manager struct {
	mu      sync.Mutex
	user    *models.User
	token   string
	loading bool

	api   API
	cache *session.Cache
	log   logging.Logger
}

// NewManager returns a manager in the Unknown state (loading until Restore
// has run).
func NewManager(api API, cache *session.Cache, log logging.Logger) *Manager {
	return &Manager{api: api, cache: cache, log: log.With("component", "auth"), loading: true}
}

// Restore reads the cached credential record and user profile. Both present
// means logged in; anything else, including a storage failure, degrades to
// logged out. The loading flag always clears, so the guard never redirects
// against a half-read cache.
func (m *Manager) Restore(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	token, err := m.cache.Token(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to restore session", "err", err)
		return
	}
	user, err := m.cache.User(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to restore cached user", "err", err)
		return
	}

	if token == "" || user == nil {
		return
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.mu.Unlock()
	m.log.Info(ctx, "session restored", "user", user.Username)
}

// Login authenticates against the server and, on success, populates the
// in-memory state and persists both records to the session cache. On failure
// the state stays logged out and the error propagates; there is no retry.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	resp, err := m.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	user := resp.User
	m.mu.Lock()
	m.token = resp.AccessToken
	m.user = &user
	m.mu.Unlock()

	if err := m.cache.SetToken(ctx, resp.AccessToken); err != nil {
		return err
	}
	return m.cache.SetUser(ctx, &user)
}

// Signup registers an account. It does not transition auth state; the caller
// must direct the user to sign in afterwards.
func (m *Manager) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	return m.api.Signup(ctx, req)
}

// Logout clears the in-memory pair and wipes every cached session key. The
// local transition always succeeds; cache failures are logged, not surfaced.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	if err := m.cache.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear session cache on logout", "err", err)
	}
}

// IsLoggedIn derives the logged-in flag from token presence.
func (m *Manager) IsLoggedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != ""
}

// User returns the current profile, or nil when logged out.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Token returns the current access token, or "" when logged out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Snapshot returns the observable state triple.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{User: m.user, IsLoggedIn: m.token != "", IsLoading: m.loading}
}
