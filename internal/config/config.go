package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// devSigningKey signs sessions in development when no key is configured.
const devSigningKey = "camp-admin-development-signing-key"

type Config struct {
	Port              string        `mapstructure:"PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	CORSOrigins       []string      `mapstructure:"CORS_ORIGINS"`
	SessionSigningKey string        `mapstructure:"SESSION_SIGNING_KEY"`
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL"`
	LoginDelay        time.Duration `mapstructure:"LOGIN_DELAY"`
	LoginRateRPS      float64       `mapstructure:"LOGIN_RATE_RPS"`
	LoginRateBurst    int           `mapstructure:"LOGIN_RATE_BURST"`
	ConfirmTTL        time.Duration `mapstructure:"CONFIRM_TTL"`
	DefaultPageSize   int           `mapstructure:"DEFAULT_PAGE_SIZE"`
	MaxPageSize       int           `mapstructure:"MAX_PAGE_SIZE"`
	BodyLimit         string        `mapstructure:"BODY_LIMIT"`
	MetricsEnabled    bool          `mapstructure:"METRICS_ENABLED"`
}

var keys = []string{
	"PORT",
	"ENV",
	"LOG_LEVEL",
	"CORS_ORIGINS",
	"SESSION_SIGNING_KEY",
	"SESSION_TTL",
	"LOGIN_DELAY",
	"LOGIN_RATE_RPS",
	"LOGIN_RATE_BURST",
	"CONFIRM_TTL",
	"DEFAULT_PAGE_SIZE",
	"MAX_PAGE_SIZE",
	"BODY_LIMIT",
	"METRICS_ENABLED",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("SESSION_TTL", "8h")
	v.SetDefault("LOGIN_DELAY", "0s")
	v.SetDefault("LOGIN_RATE_RPS", 1)
	v.SetDefault("LOGIN_RATE_BURST", 10)
	v.SetDefault("CONFIRM_TTL", "5m")
	v.SetDefault("DEFAULT_PAGE_SIZE", 10)
	v.SetDefault("MAX_PAGE_SIZE", 100)
	v.SetDefault("BODY_LIMIT", "1M")
	v.SetDefault("METRICS_ENABLED", true)

	// Bind env vars explicitly so Unmarshal picks them up
	for _, k := range keys {
		v.BindEnv(k)
	}

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = strings.Split(cfg.CORSOrigins[0], ",")
	}
	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SigningKey returns the session signing key, falling back to a fixed key
// in development.
func (c *Config) SigningKey() []byte {
	if c.SessionSigningKey == "" && c.IsDev() {
		return []byte(devSigningKey)
	}
	return []byte(c.SessionSigningKey)
}

// Validate checks that the configuration is safe to run. Outside development
// a signing key of at least 32 bytes is required.
func (c *Config) Validate() error {
	if !c.IsDev() {
		if c.SessionSigningKey == "" {
			return fmt.Errorf("SESSION_SIGNING_KEY is required when ENV=%q", c.Env)
		}
		if len(c.SessionSigningKey) < 32 {
			return fmt.Errorf("SESSION_SIGNING_KEY must be at least 32 bytes, got %d", len(c.SessionSigningKey))
		}
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.ConfirmTTL <= 0 {
		return fmt.Errorf("CONFIRM_TTL must be positive, got %s", c.ConfirmTTL)
	}
	if c.LoginDelay < 0 {
		return fmt.Errorf("LOGIN_DELAY must not be negative, got %s", c.LoginDelay)
	}
	if c.DefaultPageSize <= 0 || c.MaxPageSize <= 0 {
		return fmt.Errorf("page sizes must be positive, got DEFAULT_PAGE_SIZE=%d MAX_PAGE_SIZE=%d", c.DefaultPageSize, c.MaxPageSize)
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("DEFAULT_PAGE_SIZE (%d) exceeds MAX_PAGE_SIZE (%d)", c.DefaultPageSize, c.MaxPageSize)
	}
	if c.LoginRateRPS <= 0 || c.LoginRateBurst <= 0 {
		return fmt.Errorf("LOGIN_RATE_RPS and LOGIN_RATE_BURST must be positive")
	}
	return nil
}
