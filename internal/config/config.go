package config

import (
	"fmt"
	"os"
)

type Config struct {
	AppEnv       string
	Port         string
	LogLevel     string
	LogFormat    string
	TeachersFile string
	StaticDir    string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		TeachersFile: getEnv("TEACHERS_FILE", "teachers.json"),
		StaticDir:    getEnv("STATIC_DIR", "web/static"),
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
