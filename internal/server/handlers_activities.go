package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/errors"
)

// activityParam returns the :name path parameter. Echo routes on the escaped
// path, so names like "Chess%20Club" arrive percent-encoded.
func activityParam(c echo.Context) string {
	name := c.Param("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

func (s *Server) handleListActivities(c echo.Context) error {
	if err := c.JSON(http.StatusOK, s.activities.List()); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSignup(c echo.Context) error {
	name := activityParam(c)
	email := c.QueryParam("email")
	if email == "" {
		s.rosterMetrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return apperrors.ValidationError("email query parameter is required")
	}

	if err := s.activities.Signup(name, email); err != nil {
		return s.rosterError(err, "signup", name, email)
	}

	s.rosterMetrics.SignupsTotal.WithLabelValues("ok").Inc()
	if err := c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Signed up %s for %s", email, name),
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUnregister(c echo.Context) error {
	name := activityParam(c)
	email := c.QueryParam("email")
	if email == "" {
		s.rosterMetrics.UnregistersTotal.WithLabelValues("invalid").Inc()
		return apperrors.ValidationError("email query parameter is required")
	}

	if err := s.activities.Unregister(name, email); err != nil {
		return s.rosterError(err, "unregister", name, email)
	}

	s.rosterMetrics.UnregistersTotal.WithLabelValues("ok").Inc()
	if err := c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Unregistered %s from %s", email, name),
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// rosterError maps domain errors from roster mutations to structured HTTP
// errors and records the outcome metric.
func (s *Server) rosterError(err error, op, name, email string) error {
	counter := s.rosterMetrics.SignupsTotal
	if op == "unregister" {
		counter = s.rosterMetrics.UnregistersTotal
	}

	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		counter.WithLabelValues("not_found").Inc()
		return apperrors.NotFoundError("Activity not found").WithField("activity", name)
	case errors.Is(err, domain.ErrAlreadySignedUp):
		counter.WithLabelValues("duplicate").Inc()
		return apperrors.ValidationError("Student is already signed up").
			WithField("activity", name).
			WithField("email", email)
	case errors.Is(err, domain.ErrNotSignedUp):
		counter.WithLabelValues("not_member").Inc()
		return apperrors.ValidationError("Student is not signed up for this activity").
			WithField("activity", name).
			WithField("email", email)
	default:
		counter.WithLabelValues("error").Inc()
		return apperrors.InternalError(fmt.Sprintf("failed to %s", op), err).WithField("activity", name)
	}
}
