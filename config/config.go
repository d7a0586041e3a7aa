package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingEndpointID is returned by Config.Validate when ENDPOINT_ID is not set.
var ErrMissingEndpointID = errors.New("ENDPOINT_ID is not set")

// Config holds all configuration for the exporter
type Config struct {
	Environment       string
	EndpointID        string
	SessionizeBaseURL string
	HTTPTimeout       time.Duration
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:       env,
		EndpointID:        os.Getenv("ENDPOINT_ID"),
		SessionizeBaseURL: os.Getenv("SESSIONIZE_BASE_URL"),
		HTTPTimeout:       30 * time.Second,
	}

	// Set defaults
	if cfg.SessionizeBaseURL == "" {
		cfg.SessionizeBaseURL = "https://sessionize.com"
	}
	if s := os.Getenv("HTTP_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", s, err)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}

// Validate checks the settings needed to fetch from Sessionize.
func (c *Config) Validate() error {
	if c.EndpointID == "" {
		return ErrMissingEndpointID
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}
