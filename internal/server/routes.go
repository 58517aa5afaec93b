package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mergington/activities/internal/metrics"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler(s.registry)))

	// Root - redirect to the static frontend
	s.echo.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/static/index.html")
	})
	s.echo.Static("/static", s.config.StaticDir)

	// Auth routes (all tolerate a missing token except login, which needs none)
	s.echo.POST("/auth/login", s.handleLogin)
	s.echo.POST("/auth/logout", s.handleLogout)
	s.echo.GET("/auth/verify", s.handleVerify)

	// Activity routes (mutations require a teacher session)
	s.echo.GET("/activities", s.handleListActivities)
	s.echo.POST("/activities/:name/signup", s.handleSignup, s.requireTeacher)
	s.echo.DELETE("/activities/:name/unregister", s.handleUnregister, s.requireTeacher)
}
