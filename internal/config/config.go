package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	AppEnv           string
	Port             string
	JWTSecret        string // empty disables authentication
	AllowedOrigins   []string
	LogLevel         string
	LogFormat        string
	MetricsNamespace string
	ShutdownTimeout  time.Duration
}

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{
		AppEnv:           getString(k, "APP_ENV", "development"),
		Port:             getString(k, "PORT", "8081"),
		JWTSecret:        strings.TrimSpace(k.String("JWT_SECRET")),
		AllowedOrigins:   splitAndTrim(getString(k, "CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		LogLevel:         getString(k, "LOG_LEVEL", "info"),
		LogFormat:        getString(k, "LOG_FORMAT", "json"),
		MetricsNamespace: getString(k, "METRICS_NAMESPACE", "beverage"),
	}

	timeout, err := time.ParseDuration(getString(k, "SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	if cfg.AppEnv == "production" && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when APP_ENV=production")
	}
	return cfg, nil
}

// Addr returns the address the HTTP server binds to.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// AuthEnabled reports whether quote routes require a terminal token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func getString(k *koanf.Koanf, key, fallback string) string {
	if v := strings.TrimSpace(k.String(key)); v != "" {
		return v
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
