// Package config loads the console's environment configuration.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingBaseURL is returned when API_BASE_URL is not set.
var ErrMissingBaseURL = errors.New("config: API_BASE_URL is required")

// Config holds the console's runtime settings.
type Config struct {
	// APIBaseURL is the admin backend's base URL (required).
	APIBaseURL string

	// DBPath is the local SQLite file holding durable client state.
	DBPath string

	// MetricsAddr, when set, serves Prometheus metrics on this address.
	MetricsAddr string
}

// Load reads configuration from the environment, after merging a .env file
// when one exists in the working directory.
func Load() (Config, error) {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		DBPath:      getEnv("DB_PATH", "./data/console.db"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
	}
	if cfg.APIBaseURL == "" {
		return Config{}, ErrMissingBaseURL
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
