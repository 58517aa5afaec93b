package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/errors"
	"github.com/mergington/activities/internal/metrics"
)

type Server struct {
	echo          *echo.Echo
	config        *config.Config
	sessions      domain.SessionService
	activities    domain.ActivityService
	rosterMetrics *metrics.RosterMetrics
	registry      *prometheus.Registry
	startTime     time.Time
}

func NewServer(cfg *config.Config, sessions domain.SessionService, activities domain.ActivityService) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	reg := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)
	rosterMetrics := metrics.NewRosterMetrics(reg)
	reg.MustRegister(apperrors.HTTPErrorsTotal)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(correlationMiddleware)
	e.Use(httpMetrics.Middleware())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:          e,
		config:        cfg,
		sessions:      sessions,
		activities:    activities,
		rosterMetrics: rosterMetrics,
		registry:      reg,
		startTime:     time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Registry exposes the server's Prometheus registry so main can attach
// additional collectors, e.g. the active-session gauge.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}
