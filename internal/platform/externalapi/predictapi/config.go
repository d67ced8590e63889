// Package predictapi provides a client for the remote waste classification backend.
package predictapi

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "http://localhost:5000"
	defaultTimeout = 30 * time.Second
)

// Config holds configuration for the classification backend client.
type Config struct {
	BaseURL string        // Base URL of the backend (e.g., "http://localhost:5000")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads backend configuration from environment variables.
// PREDICT_API_TIMEOUT accepts time.ParseDuration syntax ("30s", "1m").
func LoadConfig() Config {
	cfg := Config{
		BaseURL: strings.TrimRight(os.Getenv("PREDICT_API_BASE_URL"), "/"),
		Timeout: defaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if v := os.Getenv("PREDICT_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			slog.Warn("invalid PREDICT_API_TIMEOUT, using default", "value", v, "default", defaultTimeout)
		} else {
			cfg.Timeout = d
		}
	}
	return cfg
}
