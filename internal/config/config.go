// Package config loads and validates process-wide configuration from the
// environment at startup. A missing credential is a configuration error
// here, never a per-request failure.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds the read-only settings every component is wired with.
type Config struct {
	Port         int    `validate:"gte=1,lte=65535"`
	DatabaseURL  string `validate:"required"`
	GeminiAPIKey string `validate:"required"`
	// JobSearchURL overrides the public job index, mainly for tests.
	JobSearchURL string `validate:"omitempty,url"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         8080,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		JobSearchURL: os.Getenv("JOBSEARCH_API_URL"),
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = n
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
