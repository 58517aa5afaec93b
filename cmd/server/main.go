package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/logging"
	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/registry"
	"github.com/mergington/activities/internal/server"
	"github.com/mergington/activities/internal/session"
	"github.com/mergington/activities/internal/version"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.WithError(err).Error("Server shutdown error")
		}

		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "version", version.Get().Version)

	teachers, err := session.LoadTeachers(cfg.TeachersFile)
	if err != nil {
		logging.WithError(err).Error("Failed to load teacher credentials", "path", cfg.TeachersFile)
		os.Exit(1)
	}

	clock := clockwork.NewRealClock()
	sessions := session.NewManager(teachers, clock)
	activities := registry.New()

	srv := server.NewServer(cfg, sessions, activities)
	metrics.RegisterSessionGauge(srv.Registry(), sessions.Count)

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port, "activities", activities.Count(), "teachers", len(teachers))
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.WithError(err).Error("Server error")
		os.Exit(1)
	}

	<-done
}
