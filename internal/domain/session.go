package domain

import "time"

// Session maps an opaque bearer token to a logged-in teacher.
// Sessions never expire; CreatedAt exists for logging only.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
}

// SessionService is the authentication surface consumed by the HTTP layer.
type SessionService interface {
	// Login validates credentials and mints a new session token.
	// Returns ErrInvalidCredentials if no teacher matches.
	Login(username, password string) (string, error)

	// Logout removes the session for token. Unknown tokens are a no-op.
	Logout(token string)

	// Verify reports whether token belongs to an active session and, if so,
	// which teacher owns it. It has no side effects.
	Verify(token string) (username string, ok bool)
}
