package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Errorf("expected development by default, got %s", cfg.Env)
	}
	if cfg.SessionTTL != 8*time.Hour {
		t.Errorf("expected 8h session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.ConfirmTTL != 5*time.Minute {
		t.Errorf("expected 5m confirm ttl, got %s", cfg.ConfirmTTL)
	}
	if cfg.LoginDelay != 0 {
		t.Errorf("expected no login delay, got %s", cfg.LoginDelay)
	}
	if cfg.DefaultPageSize != 10 || cfg.MaxPageSize != 100 {
		t.Errorf("unexpected page sizes %d/%d", cfg.DefaultPageSize, cfg.MaxPageSize)
	}
	if !cfg.MetricsEnabled {
		t.Error("expected metrics enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LOGIN_DELAY", "1s")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m, got %s", cfg.SessionTTL)
	}
	if cfg.LoginDelay != time.Second {
		t.Errorf("expected 1s, got %s", cfg.LoginDelay)
	}
	if cfg.DefaultPageSize != 25 {
		t.Errorf("expected 25, got %d", cfg.DefaultPageSize)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins %q", cfg.CORSOrigins)
	}
	if cfg.MetricsEnabled {
		t.Error("expected metrics disabled")
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_SigningKey(t *testing.T) {
	dev := &Config{Env: "development"}
	if len(dev.SigningKey()) == 0 {
		t.Error("expected a development signing key")
	}
	prod := &Config{Env: "production", SessionSigningKey: "abc"}
	if string(prod.SigningKey()) != "abc" {
		t.Errorf("expected configured key, got %q", prod.SigningKey())
	}
}

func validConfig() *Config {
	return &Config{
		Env:               "production",
		SessionSigningKey: strings.Repeat("k", 32),
		SessionTTL:        time.Hour,
		ConfirmTTL:        time.Minute,
		DefaultPageSize:   10,
		MaxPageSize:       100,
		LoginRateRPS:      1,
		LoginRateBurst:    10,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing key in production", func(c *Config) { c.SessionSigningKey = "" }, "SESSION_SIGNING_KEY is required"},
		{"short key", func(c *Config) { c.SessionSigningKey = "short" }, "at least 32 bytes"},
		{"dev without key", func(c *Config) { c.Env = "development"; c.SessionSigningKey = "" }, ""},
		{"zero session ttl", func(c *Config) { c.SessionTTL = 0 }, "SESSION_TTL"},
		{"zero confirm ttl", func(c *Config) { c.ConfirmTTL = 0 }, "CONFIRM_TTL"},
		{"negative login delay", func(c *Config) { c.LoginDelay = -time.Second }, "LOGIN_DELAY"},
		{"default above max", func(c *Config) { c.DefaultPageSize = 200 }, "exceeds MAX_PAGE_SIZE"},
		{"zero page size", func(c *Config) { c.MaxPageSize = 0 }, "page sizes must be positive"},
		{"zero rate", func(c *Config) { c.LoginRateRPS = 0 }, "LOGIN_RATE_RPS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
