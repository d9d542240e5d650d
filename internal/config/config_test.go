package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/lingo")
	t.Setenv("APP_ADDR", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.Addr != ":3001" {
		t.Fatalf("expected default addr :3001, got %q", cfg.Addr)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development environment by default")
	}
	if cfg.DBMaxOpenConns != 25 || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/lingo")
	t.Setenv("APP_ADDR", "0.0.0.0:8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.Addr != "0.0.0.0:8080" || cfg.IsDevelopment() {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.DBMaxOpenConns != 50 || cfg.DBConnMaxLife != 5*time.Minute {
		t.Fatalf("pool overrides not applied: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("invalid duration should fall back to default, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is missing")
	}
}
