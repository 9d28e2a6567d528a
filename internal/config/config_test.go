package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	// clear env vars
	_ = os.Unsetenv("FREELANCE_HTTP_PORT")
	_ = os.Unsetenv("FREELANCE_ZOOM_BASE_URL")
	_ = os.Unsetenv("FREELANCE_RESEND_BASE_URL")
	_ = os.Unsetenv("FREELANCE_EMAIL_FROM")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected default http port: %d", cfg.HTTPPort)
	}
	if cfg.ZoomBaseURL != "https://api.zoom.us" {
		t.Fatalf("unexpected default zoom base url: %s", cfg.ZoomBaseURL)
	}
	if cfg.ResendBaseURL != "https://api.resend.com" {
		t.Fatalf("unexpected default resend base url: %s", cfg.ResendBaseURL)
	}
	if cfg.EmailFrom != "Meetings <onboarding@resend.dev>" {
		t.Fatalf("unexpected default email from: %s", cfg.EmailFrom)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("FREELANCE_ZOOM_BASE_URL", "http://localhost:9999")
	defer func() { _ = os.Unsetenv("FREELANCE_ZOOM_BASE_URL") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.ZoomBaseURL != "http://localhost:9999" {
		t.Fatalf("zoom base url env override failed, got %s", cfg.ZoomBaseURL)
	}
}

func TestConfigValidate_MissingCredentials(t *testing.T) {
	cfg := &Config{PostgresDSN: "postgres://localhost/portal"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for missing zoom credentials")
	}

	cfg.ZoomAPIKey = "key"
	cfg.ZoomAPISecret = "secret"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for missing resend key")
	}

	cfg.ResendAPIKey = "re_123"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestConfigValidate_MissingDSN(t *testing.T) {
	cfg := &Config{ZoomAPIKey: "k", ZoomAPISecret: "s", ResendAPIKey: "r"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for missing postgres DSN")
	}
}
