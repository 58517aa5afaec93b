package session

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mergington/activities/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTeachers() []domain.Teacher {
	return []domain.Teacher{
		{Username: "teacher1", Password: "password1"},
		{Username: "teacher2", Password: "password2"},
	}
}

func newTestManager() *Manager {
	return NewManager(testTeachers(), clockwork.NewFakeClock())
}

func TestLoginSuccess(t *testing.T) {
	m := newTestManager()

	token, err := m.Login("teacher1", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, ok := m.Verify(token)
	assert.True(t, ok)
	assert.Equal(t, "teacher1", username)
}

func TestLoginInvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "teacher1", "wrong"},
		{"unknown user", "nobody", "password1"},
		{"swapped credentials", "teacher1", "password2"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager()

			token, err := m.Login(tt.username, tt.password)
			require.ErrorIs(t, err, domain.ErrInvalidCredentials)
			assert.Empty(t, token)
			assert.Zero(t, m.Count())
		})
	}
}

func TestLoginTokensAreUnique(t *testing.T) {
	m := newTestManager()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		token, err := m.Login("teacher1", "password1")
		require.NoError(t, err)
		seen[token] = struct{}{}
	}
	assert.Len(t, seen, 50)
	assert.Equal(t, 50, m.Count())
}

func TestLogoutInvalidatesToken(t *testing.T) {
	m := newTestManager()

	token, err := m.Login("teacher2", "password2")
	require.NoError(t, err)

	m.Logout(token)

	_, ok := m.Verify(token)
	assert.False(t, ok)
	assert.Zero(t, m.Count())
}

func TestLogoutUnknownTokenIsNoop(t *testing.T) {
	m := newTestManager()

	token, err := m.Login("teacher1", "password1")
	require.NoError(t, err)

	m.Logout("no-such-token")

	username, ok := m.Verify(token)
	assert.True(t, ok)
	assert.Equal(t, "teacher1", username)
	assert.Equal(t, 1, m.Count())
}

func TestVerifyUnknownToken(t *testing.T) {
	m := newTestManager()

	username, ok := m.Verify("bogus")
	assert.False(t, ok)
	assert.Empty(t, username)

	username, ok = m.Verify("")
	assert.False(t, ok)
	assert.Empty(t, username)
}

func TestSessionCreatedAtUsesClock(t *testing.T) {
	start := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	m := NewManager(testTeachers(), clock)

	token, err := m.Login("teacher1", "password1")
	require.NoError(t, err)

	m.mu.RLock()
	sess := m.sessions[token]
	m.mu.RUnlock()
	assert.Equal(t, start, sess.CreatedAt)

	// No expiry: a session minted long ago still verifies.
	clock.Advance(365 * 24 * time.Hour)
	_, ok := m.Verify(token)
	assert.True(t, ok)
}
