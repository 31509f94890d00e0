package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port         int
	Env          string
	TemplatesDir string
	StaticDir    string
	DefaultTheme string
	Session      SessionConfig
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
	SweepEvery time.Duration
}

// Load reads the configuration from the environment, falling back to
// development defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         8080,
		Env:          envOr("APP_ENV", "development"),
		TemplatesDir: os.Getenv("TEMPLATES_DIR"),
		StaticDir:    envOr("STATIC_DIR", "./static"),
		DefaultTheme: envOr("DEFAULT_THEME", "light"),
		Session: SessionConfig{
			Secret:     os.Getenv("SESSION_SECRET"),
			TTL:        12 * time.Hour,
			CookieName: envOr("SESSION_COOKIE", "grade_session"),
			SweepEvery: time.Minute,
		},
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL %q", v)
		}
		cfg.Session.TTL = ttl
	}
	if v := os.Getenv("SESSION_SWEEP_INTERVAL"); v != "" {
		every, err := time.ParseDuration(v)
		if err != nil || every <= 0 {
			return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL %q", v)
		}
		cfg.Session.SweepEvery = every
	}

	if cfg.Session.Secret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET is required when APP_ENV=%s", cfg.Env)
		}
		cfg.Session.Secret = "gradecalculator-dev-secret" // Default for development
	}
	cfg.Session.Secure = cfg.IsProduction()

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
