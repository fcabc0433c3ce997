// Package config loads server configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration for the server.
type Config struct {
	// Port is the TCP port the HTTP server listens on (PORT, default 8080).
	Port string

	// DBPath is the SQLite database file path (DB_PATH, default ./data/stockroom.db).
	DBPath string

	// RequestTimeout bounds the handling of a single request
	// (REQUEST_TIMEOUT_SECONDS, default 30).
	RequestTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM
	// (SHUTDOWN_TIMEOUT_SECONDS, default 10).
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, falling back to
// defaults for anything unset.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "./data/stockroom.db"),
		RequestTimeout:  secondsFromEnv("REQUEST_TIMEOUT_SECONDS", 30),
		ShutdownTimeout: secondsFromEnv("SHUTDOWN_TIMEOUT_SECONDS", 10),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func secondsFromEnv(key string, fallback int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
