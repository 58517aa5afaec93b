// Package session implements teacher authentication and the in-memory
// session token store.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/logging"
)

const tokenBytes = 32

// Manager owns the token -> session map. Sessions are created at login and
// removed at logout; there is no expiry, so a token stays valid until the
// teacher logs out or the process restarts.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	teachers []domain.Teacher
	clock    clockwork.Clock
}

// NewManager creates a Manager over the given teacher credentials.
func NewManager(teachers []domain.Teacher, clock clockwork.Clock) *Manager {
	return &Manager{
		sessions: make(map[string]domain.Session),
		teachers: teachers,
		clock:    clock,
	}
}

// Login validates credentials against the loaded teacher list and mints a
// new session token on success.
func (m *Manager) Login(username, password string) (string, error) {
	var matched bool
	for _, t := range m.teachers {
		if t.Username == username && t.Password == password {
			matched = true
			break
		}
	}
	if !matched {
		return "", domain.ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	m.mu.Lock()
	m.sessions[token] = domain.Session{
		Token:     token,
		Username:  username,
		CreatedAt: m.clock.Now(),
	}
	m.mu.Unlock()

	logging.WithTeacher(username).Info("Teacher logged in")
	return token, nil
}

// Logout removes the session for token. Unknown tokens are a no-op.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	sess, ok := m.sessions[token]
	delete(m.sessions, token)
	m.mu.Unlock()

	if ok {
		logging.WithTeacher(sess.Username).Info("Teacher logged out")
	}
}

// Verify reports whether token belongs to an active session.
func (m *Manager) Verify(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	m.mu.RLock()
	sess, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	return sess.Username, true
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
