package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoSession is returned when no user is logged in.
var ErrNoSession = errors.New("not logged in, run 'thirty login' first")

// Session is the persisted login flag: which allow-listed user owns the
// current session.
type Session struct {
	Username string `json:"username"`
}

// SessionStore reads and writes the session file in the config directory.
type SessionStore struct {
	path string
}

func NewSessionStore(configDir string) *SessionStore {
	return &SessionStore{
		path: filepath.Join(configDir, "session.json"),
	}
}

// Current returns the logged-in username. A missing, unreadable, or
// stale session (user no longer in the allow-list) reports ErrNoSession.
func (s *SessionStore) Current() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", ErrNoSession
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return "", ErrNoSession
	}
	if sess.Username == "" || !KnownUser(sess.Username) {
		return "", ErrNoSession
	}
	return sess.Username, nil
}

// Set persists the session for a username.
func (s *SessionStore) Set(username string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.Marshal(Session{Username: username})
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is a no-op.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
