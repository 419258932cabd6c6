package config

import (
	"testing"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

func load(t *testing.T, values map[string]any) (*Config, error) {
	t.Helper()
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		t.Fatalf("load confmap: %v", err)
	}
	return fromKoanf(k)
}

func TestDefaults(t *testing.T) {
	cfg, err := load(t, map[string]any{})
	if err != nil {
		t.Fatalf("fromKoanf: %v", err)
	}
	if cfg.Port != "8081" {
		t.Errorf("port: got %q, want 8081", cfg.Port)
	}
	if cfg.Addr() != ":8081" {
		t.Errorf("addr: got %q", cfg.Addr())
	}
	if cfg.AuthEnabled() {
		t.Error("auth should be disabled without JWT_SECRET")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout: got %v", cfg.ShutdownTimeout)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("origins: got %v", cfg.AllowedOrigins)
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := load(t, map[string]any{
		"PORT":                 ":9000",
		"JWT_SECRET":           "s3cret",
		"CORS_ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
		"SHUTDOWN_TIMEOUT":     "3s",
		"LOG_FORMAT":           "console",
	})
	if err != nil {
		t.Fatalf("fromKoanf: %v", err)
	}
	if cfg.Addr() != ":9000" {
		t.Errorf("addr: got %q", cfg.Addr())
	}
	if !cfg.AuthEnabled() {
		t.Error("auth should be enabled")
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("origins: got %v", cfg.AllowedOrigins)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("shutdown timeout: got %v", cfg.ShutdownTimeout)
	}
	if cfg.LogFormat != "console" {
		t.Errorf("log format: got %q", cfg.LogFormat)
	}
}

func TestInvalidShutdownTimeout(t *testing.T) {
	if _, err := load(t, map[string]any{"SHUTDOWN_TIMEOUT": "soon"}); err == nil {
		t.Fatal("expected error for invalid SHUTDOWN_TIMEOUT")
	}
}

func TestProductionRequiresSecret(t *testing.T) {
	if _, err := load(t, map[string]any{"APP_ENV": "production"}); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing in production")
	}
}
