package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("expected postgres driver, got %s", cfg.Database.Driver)
	}
	if cfg.JWT.RefreshTokenExpiry != 7*24*time.Hour {
		t.Errorf("expected 168h refresh expiry, got %s", cfg.JWT.RefreshTokenExpiry)
	}
	if cfg.Redis.Enabled {
		t.Error("expected redis to be disabled by default")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("APP_TIMEZONE", "Africa/Addis_Ababa")
	t.Setenv("LOGIN_RATE_WINDOW", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.RateLimit.LoginWindow != 30*time.Second {
		t.Errorf("expected 30s window, got %s", cfg.RateLimit.LoginWindow)
	}

	loc, err := cfg.App.Location()
	if err != nil {
		t.Fatalf("unexpected location error: %v", err)
	}
	if loc.String() != "Africa/Addis_Ababa" {
		t.Errorf("expected Africa/Addis_Ababa, got %s", loc)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown driver", key: "DATABASE_DRIVER", value: "mysql"},
		{name: "unknown timezone", key: "APP_TIMEZONE", value: "Mars/Olympus"},
		{name: "non-numeric port", key: "SERVER_PORT", value: "eighty"},
		{name: "zero rate limit", key: "LOGIN_RATE_LIMIT", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestAppConfig_Level(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		if got := (AppConfig{LogLevel: in}).Level(); got != want {
			t.Errorf("Level(%q) = %v, want %v", in, got, want)
		}
	}
}
