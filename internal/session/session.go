// Package session persists the current login between CLI invocations.
//
// A [Session] is an immutable value threaded explicitly through the
// presentation layer; nothing in this package holds global state. The
// service layer never sees it.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/shared"
)

// Session identifies the logged-in user.
type Session struct {
	UserID  string    `json:"user_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	LoginAt time.Time `json:"login_at"`
}

// New builds a session for the given user, stamped with the current time.
func New(user *models.User) Session {
	return Session{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		LoginAt: time.Now().UTC(),
	}
}

// DefaultPath returns ~/.wlx/session.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".wlx", "session.json"), nil
}

// Load reads the session file at path. A missing file fails with
// [shared.ErrNotAuthenticated].
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, shared.ErrNotAuthenticated
		}
		return Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	if sess.UserID == "" {
		return Session{}, shared.ErrNotAuthenticated
	}

	return sess, nil
}

// Save writes the session to path, creating parent directories as needed.
func Save(path string, sess Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Clear removes the session file. Clearing an absent session is a no-op.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
