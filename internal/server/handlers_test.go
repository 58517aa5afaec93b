package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain"
)

// --- Mock implementations ---

type mockSessionService struct {
	loginFn  func(username, password string) (string, error)
	logoutFn func(token string)
	verifyFn func(token string) (string, bool)
}

func (m *mockSessionService) Login(username, password string) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(username, password)
	}
	return "", domain.ErrInvalidCredentials
}

func (m *mockSessionService) Logout(token string) {
	if m.logoutFn != nil {
		m.logoutFn(token)
	}
}

func (m *mockSessionService) Verify(token string) (string, bool) {
	if m.verifyFn != nil {
		return m.verifyFn(token)
	}
	return "", false
}

type mockActivityService struct {
	listFn       func() map[string]domain.Activity
	signupFn     func(activity, email string) error
	unregisterFn func(activity, email string) error
}

func (m *mockActivityService) List() map[string]domain.Activity {
	if m.listFn != nil {
		return m.listFn()
	}
	return map[string]domain.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
	}
}

func (m *mockActivityService) Signup(activity, email string) error {
	if m.signupFn != nil {
		return m.signupFn(activity, email)
	}
	return nil
}

func (m *mockActivityService) Unregister(activity, email string) error {
	if m.unregisterFn != nil {
		return m.unregisterFn(activity, email)
	}
	return nil
}

// verifyAnyToken accepts every non-empty token as teacher1.
func verifyAnyToken(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	return "teacher1", true
}

// --- Test server setup ---

func newTestServer(t *testing.T, sessions domain.SessionService, activities domain.ActivityService) *Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv:    "test",
		Port:      "8080",
		StaticDir: t.TempDir(),
	}
	return NewServer(cfg, sessions, activities)
}

// doRequest runs req through the full middleware chain.
func doRequest(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func authedRequest(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return req
}
