package server

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mergington/activities/internal/correlation"
	apperrors "github.com/mergington/activities/internal/errors"
)

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := correlation.WithID(c.Request().Context(), correlation.NewID())
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header, returning "" when the header is missing or malformed.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// requireTeacher gates roster mutations behind a valid session token.
// On success the teacher's username is stored in the echo context.
func (s *Server) requireTeacher(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, ok := s.sessions.Verify(bearerToken(c))
		if !ok {
			return apperrors.ForbiddenError("Authentication required. Only teachers can manage student registrations.")
		}

		c.Set("username", username)
		return next(c)
	}
}
