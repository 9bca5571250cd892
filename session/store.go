// Package session holds the client-side authentication state: a
// persisted bearer token plus cached user, and the manager that drives
// the login lifecycle around them.
package session

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ganeshdatta23/skillstacker"
)

// Session is the persisted pair of token and cached user. A non-nil User
// means a valid token was presented to obtain it at save time; the token
// itself is never assumed unexpired without a server round trip.
type Session struct {
	Token string             `json:"token"`
	User  *skillstacker.User `json:"user,omitempty"`
}

// Store persists the session in a single JSON file with atomic writes.
//
// A Store created with an empty path is a no-op store: Load returns nil,
// Save and Clear succeed silently, Token returns "". That is the mode
// used where persistent storage is unavailable.
type Store struct {
	mu      sync.RWMutex
	path    string
	session *Session
	loadErr error
}

// DefaultPath returns the session file path under the user config
// directory, or "" (a no-op store) when no config directory exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "skillstacker", "session.json")
}

// NewStore creates or opens a session store at the given path. A missing
// file is an empty store; a corrupt file is kept on disk but reported
// through Load until Save or Clear replaces it.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if path == "" {
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("%w: %v", skillstacker.ErrSessionUnavailable, err)
	}

	s.load()
	return s, nil
}

// load reads the session file into memory. Missing file means no
// session; unparseable content is recorded as a load error.
func (s *Store) load() {
	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.loadErr = fmt.Errorf("%w: %v", skillstacker.ErrSessionUnavailable, err)
		}
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		s.loadErr = fmt.Errorf("%w: %v", skillstacker.ErrSessionUnavailable, err)
		return
	}
	if len(data) == 0 {
		return
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.loadErr = fmt.Errorf("%w: %v", skillstacker.ErrSessionCorrupted, err)
		return
	}
	if sess.Token == "" {
		return
	}
	s.session = &sess
}

// Load returns the persisted session, or nil when none exists.
func (s *Store) Load() (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.session == nil {
		return nil, nil
	}
	cp := *s.session
	return &cp, nil
}

// Save persists a token and user, replacing any previous session. On a
// no-op store nothing is retained: without persistence the token would
// outlive its file-backed lifecycle, so requests stay anonymous.
func (s *Store) Save(token string, user *skillstacker.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	s.session = &Session{Token: token, User: user}
	s.loadErr = nil
	return s.persistLocked()
}

// Clear removes the persisted session. Calling Clear on an already empty
// store is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.loadErr = nil
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", skillstacker.ErrSessionUnavailable, err)
	}
	return nil
}

// Token returns the persisted bearer token, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// Invalidate discards the session. It satisfies skillstacker.TokenSource
// so the HTTP client can clear the store on a 401.
func (s *Store) Invalidate() {
	_ = s.Clear()
}

// Path returns the session file path.
func (s *Store) Path() string {
	return s.path
}

// persistLocked writes the session atomically using the temp file +
// rename pattern. Must be called with the write lock held.
func (s *Store) persistLocked() error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(s.session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	tmpPath := s.path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("%w: create temp: %v", skillstacker.ErrSessionUnavailable, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: write: %v", skillstacker.ErrSessionUnavailable, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: fsync: %v", skillstacker.ErrSessionUnavailable, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: close: %v", skillstacker.ErrSessionUnavailable, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: rename: %v", skillstacker.ErrSessionUnavailable, err)
	}
	return nil
}
