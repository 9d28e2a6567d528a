package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the configuration for the portal backend.
// Environment variables are parsed from the FREELANCE_ prefix.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Postgres Configuration
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Zoom Configuration
	ZoomAPIKey    string `envconfig:"ZOOM_API_KEY" default:""`
	ZoomAPISecret string `envconfig:"ZOOM_API_SECRET" default:""`
	ZoomBaseURL   string `envconfig:"ZOOM_BASE_URL" default:"https://api.zoom.us"`

	// Resend (email) Configuration
	ResendAPIKey  string `envconfig:"RESEND_API_KEY" default:""`
	ResendBaseURL string `envconfig:"RESEND_BASE_URL" default:"https://api.resend.com"`
	EmailFrom     string `envconfig:"EMAIL_FROM" default:"Meetings <onboarding@resend.dev>"`
}

// New creates a new configuration from environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("FREELANCE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// Validate enforces the credentials the meeting pipeline depends on. It runs
// once at startup so a missing secret fails fast instead of per request.
func (c *Config) Validate() error {
	if c.PostgresDSN == "" {
		return fmt.Errorf("FREELANCE_POSTGRES_DSN is required")
	}
	if c.ZoomAPIKey == "" || c.ZoomAPISecret == "" {
		return fmt.Errorf("FREELANCE_ZOOM_API_KEY and FREELANCE_ZOOM_API_SECRET are required")
	}
	if c.ResendAPIKey == "" {
		return fmt.Errorf("FREELANCE_RESEND_API_KEY is required")
	}
	return nil
}
