package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"cougcuts/internal/engine"
)

type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool
}

type Config struct {
	Port        string
	AppEnv      string
	PostgresURL string

	SMTP SMTPSettings

	BookingURL      string
	AppBaseURL      string
	DocumentDir     string
	DocumentLinkTTL time.Duration

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	DefaultBudget engine.Tier

	// AllowedOrigins for CORS; empty allows any origin.
	AllowedOrigins []string
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load reads .env from the working directory when it exists, then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Port:        get("PORT", "8080"),
		AppEnv:      get("APP_ENV", "development"),
		PostgresURL: get("POSTGRES_URL", ""),
		SMTP: SMTPSettings{
			Host:     get("SMTP_HOST", "smtp.gmail.com"),
			Username: get("SMTP_USERNAME", ""),
			Password: get("SMTP_PASSWORD", ""),
			From:     get("FROM_EMAIL", ""),
			FromName: get("FROM_NAME", "Coug Cuts"),
		},
		BookingURL:        get("BOOKING_URL", "https://cougcuts.com/book"),
		AppBaseURL:        get("APP_BASE_URL", "http://localhost:8080"),
		DocumentDir:       get("DOCUMENT_DIR", "routines"),
		JWTSecret:         get("JWT_SECRET", ""),
		AdminEmail:        get("ADMIN_EMAIL", ""),
		AdminPasswordHash: get("ADMIN_PASSWORD_HASH", ""),
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}

	var err error
	if cfg.SMTP.Port, err = strconv.Atoi(get("SMTP_PORT", "587")); err != nil {
		return nil, fmt.Errorf("SMTP_PORT: %w", err)
	}
	if cfg.SMTP.UseSSL, err = strconv.ParseBool(get("SMTP_USE_SSL", "false")); err != nil {
		return nil, fmt.Errorf("SMTP_USE_SSL: %w", err)
	}
	if cfg.DocumentLinkTTL, err = time.ParseDuration(get("DOCUMENT_LINK_TTL", "168h")); err != nil {
		return nil, fmt.Errorf("DOCUMENT_LINK_TTL: %w", err)
	}
	if cfg.DocumentLinkTTL <= 0 {
		return nil, fmt.Errorf("DOCUMENT_LINK_TTL must be positive, got %s", cfg.DocumentLinkTTL)
	}

	budget, ok := engine.ParseTier(get("DEFAULT_BUDGET", string(engine.TierMid)))
	if !ok {
		return nil, fmt.Errorf("DEFAULT_BUDGET must be one of low, mid, premium")
	}
	cfg.DefaultBudget = budget

	for _, o := range strings.Split(get("CORS_ALLOWED_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}

// ValidateServer reports the keys the HTTP server cannot start without.
func (c *Config) ValidateServer() error {
	var missing []string
	if c.PostgresURL == "" {
		missing = append(missing, "POSTGRES_URL")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}

// SMTPEnabled is false when no credentials are configured; mail is then
// skipped rather than failing each submission.
func (c *Config) SMTPEnabled() bool {
	return c.SMTP.Host != "" && c.SMTP.Username != "" && c.SMTP.Password != ""
}
