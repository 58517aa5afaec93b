package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/errors"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid login request body")
	}

	token, err := s.sessions.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return apperrors.UnauthorizedError("Invalid credentials").WithField("username", req.Username)
		}
		return apperrors.InternalError("failed to create session", err)
	}

	if err := c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Username: req.Username,
		Message:  "Login successful",
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleLogout(c echo.Context) error {
	// Idempotent: an absent or unknown token still logs out successfully.
	if token := bearerToken(c); token != "" {
		s.sessions.Logout(token)
	}

	if err := c.JSON(http.StatusOK, map[string]string{"message": "Logout successful"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleVerify(c echo.Context) error {
	username, ok := s.sessions.Verify(bearerToken(c))
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"authenticated": false})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"authenticated": true,
		"username":      username,
	})
}
