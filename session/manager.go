package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/ganeshdatta23/skillstacker"
)

// State is the manager's authentication state.
type State int

const (
	// StateUnknown is the state before Init runs.
	StateUnknown State = iota
	// StateLoading is the state while a stored token is being verified.
	StateLoading
	// StateAuthenticated means a verified user is present.
	StateAuthenticated
	// StateAnonymous means no valid session exists.
	StateAnonymous
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Manager owns the current-user value and drives the session lifecycle
// against the auth endpoints.
//
// Concurrent calls are serialized by a mutex; two racing logins resolve
// last-writer-wins, matching the single-submission contract callers are
// expected to enforce.
type Manager struct {
	mu     sync.Mutex
	client *skillstacker.Client
	store  *Store
	logger *slog.Logger

	state State
	user  *skillstacker.User
}

// NewManager creates a manager over a client and a store. The client
// should be bound to the same store via skillstacker.WithSession so a 401
// clears it centrally.
func NewManager(client *skillstacker.Client, store *Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		client: client,
		store:  store,
		logger: logger,
		state:  StateUnknown,
	}
}

// Init resolves the startup state: a stored token is verified against the
// backend; success restores the session, any failure clears it.
func (m *Manager) Init(ctx context.Context) error {
	m.mu.Lock()
	m.state = StateLoading
	m.mu.Unlock()

	sess, err := m.store.Load()
	if err != nil || sess == nil || sess.Token == "" {
		if err != nil {
			m.logger.Debug("discarding unreadable session", "error", err)
			_ = m.store.Clear()
		}
		m.setAnonymous()
		return nil
	}

	user, err := m.client.Auth.Me(ctx)
	if err != nil {
		// A 401 already cleared the store through the client; clear
		// again for every other failure so a stale token is not kept.
		_ = m.store.Clear()
		m.setAnonymous()
		m.logger.Debug("stored session rejected", "error", err)
		return nil
	}

	m.setAuthenticated(user)
	return nil
}

// Login authenticates and persists the resulting session. On failure the
// state stays anonymous and the backend's message is returned.
func (m *Manager) Login(ctx context.Context, email, password string) (*skillstacker.User, error) {
	m.mu.Lock()
	m.state = StateLoading
	m.mu.Unlock()

	resp, err := m.client.Auth.Login(ctx, strings.ToLower(strings.TrimSpace(email)), password)
	if err != nil {
		m.setAnonymous()
		return nil, err
	}
	return m.adopt(resp)
}

// Register creates an account and persists the resulting session, same
// shape as Login.
func (m *Manager) Register(ctx context.Context, req skillstacker.RegisterRequest) (*skillstacker.User, error) {
	m.mu.Lock()
	m.state = StateLoading
	m.mu.Unlock()

	resp, err := m.client.Auth.Register(ctx, req)
	if err != nil {
		m.setAnonymous()
		return nil, err
	}
	return m.adopt(resp)
}

// Logout clears the session. It never touches the network and is
// idempotent: a second call leaves the same anonymous, empty state.
func (m *Manager) Logout() {
	_ = m.store.Clear()
	m.setAnonymous()
	m.logger.Debug("session cleared")
}

// State returns the current authentication state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the authenticated user, or nil.
func (m *Manager) CurrentUser() *skillstacker.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	cp := *m.user
	return &cp
}

// adopt sanitizes and stores a fresh auth response.
func (m *Manager) adopt(resp *skillstacker.AuthResponse) (*skillstacker.User, error) {
	user := SanitizeUser(resp.User)
	if err := m.store.Save(resp.AccessToken, &user); err != nil {
		// The backend accepted the credentials; an unwritable store
		// still leaves a usable in-memory session.
		m.logger.Warn("session not persisted", "error", err)
	}
	m.setAuthenticated(&user)
	m.logger.Debug("session established", "customer_id", user.CustomerID)
	cp := user
	return &cp, nil
}

func (m *Manager) setAuthenticated(user *skillstacker.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sanitized := SanitizeUser(*user)
	m.user = &sanitized
	m.state = StateAuthenticated
}

func (m *Manager) setAnonymous() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.state = StateAnonymous
}

// markupUnsafe are the characters stripped from untrusted profile fields
// before display.
const markupUnsafe = `<>"'&`

// SanitizeField removes markup-significant characters from one untrusted
// display field.
func SanitizeField(v string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(markupUnsafe, r) {
			return -1
		}
		return r
	}, v)
}

// SanitizeUser returns a copy of the user with all display fields
// sanitized.
func SanitizeUser(u skillstacker.User) skillstacker.User {
	u.FirstName = SanitizeField(u.FirstName)
	u.LastName = SanitizeField(u.LastName)
	u.Email = SanitizeField(u.Email)
	return u
}
