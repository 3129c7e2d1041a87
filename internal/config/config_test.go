package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.Host != "" {
		t.Fatalf("unexpected address settings: %+v", cfg)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr())
	}
	if cfg.LogLevel != "info" || cfg.DocsPath != "/api-docs" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.MetricsEnabled || cfg.MetricsPath != "/metrics" {
		t.Fatalf("unexpected metrics defaults: %+v", cfg)
	}
	if !slices.Equal(cfg.CORSAllowedOrigins, []string{"*"}) {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr: %s", cfg.Addr())
	}
	if cfg.LogLevel != "debug" || cfg.MetricsEnabled {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !slices.Equal(cfg.CORSAllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("unexpected origins: %q", cfg.CORSAllowedOrigins)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.ShutdownTimeout)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"port not a number", "PORT", "http", "failed to parse config"},
		{"port out of range", "PORT", "70000", "invalid port"},
		{"log level", "LOG_LEVEL", "verbose", "invalid log level"},
		{"docs path", "DOCS_PATH", "docs", "docs path"},
		{"metrics path", "METRICS_PATH", "metrics", "metrics path"},
		{"shutdown timeout", "SHUTDOWN_TIMEOUT", "0s", "shutdown timeout"},
		{"empty origin", "CORS_ALLOWED_ORIGINS", "https://a.example,,", "CORS origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=9100\nLOG_LEVEL=warn\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// Environment values take precedence over the file.
	t.Setenv("LOG_LEVEL", "error")
	// godotenv sets variables directly; register PORT so t.Setenv restores it.
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9100 {
		t.Fatalf("expected port from file, got %d", cfg.Port)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("expected environment to win, got %s", cfg.LogLevel)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing env file should be ignored, got %v", err)
	}
}
