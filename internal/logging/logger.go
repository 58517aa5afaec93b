package logging

import (
	"log/slog"
	"os"

	"github.com/mergington/activities/internal/correlation"
)

// Logger is the application-wide structured logger instance.
var Logger *slog.Logger

// InitLogger initializes the global logger with the specified level and format.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "text")
func InitLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Logger = slog.New(correlation.NewHandler(handler))
	slog.SetDefault(Logger)
}

// base falls back to the process default so the helpers stay usable in
// tests that never call InitLogger.
func base() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}

// WithTeacher returns a logger with a username field.
func WithTeacher(username string) *slog.Logger {
	return base().With("username", username)
}

// WithActivity returns a logger with an activity field.
func WithActivity(name string) *slog.Logger {
	return base().With("activity", name)
}

// WithError returns a logger with an error field.
func WithError(err error) *slog.Logger {
	return base().With("error", err)
}
