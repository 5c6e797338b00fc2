package config_test

import (
	"testing"
	"time"

	"github.com/iho/fintrack/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabasePath == "" {
		t.Fatalf("expected default database path to be set")
	}

	if cfg.OpeningBalance != "1000000.00" {
		t.Fatalf("expected default opening balance 1000000.00, got %s", cfg.OpeningBalance)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/ledger.db")
	t.Setenv("OPENING_BALANCE", "500.25")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "45s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabasePath != "/tmp/ledger.db" {
		t.Fatalf("expected custom database path, got %s", cfg.DatabasePath)
	}

	if cfg.OpeningBalance != "500.25" {
		t.Fatalf("expected opening balance override, got %s", cfg.OpeningBalance)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.HTTPShutdownTimeout != 45*time.Second {
		t.Fatalf("expected shutdown timeout override, got %s", cfg.HTTPShutdownTimeout)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
