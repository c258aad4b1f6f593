package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()

	t.Setenv("WeatherStackAPI", "")
	t.Setenv("PROVIDER_TIMEOUT", "")
	t.Setenv("STATS_INTERVAL", "")
	t.Setenv("CORS_ALLOW_ORIGIN", "")
	t.Setenv("PORT", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.WeatherstackAPIKey != "" {
		t.Errorf("WeatherstackAPIKey = %q, want empty", cfg.WeatherstackAPIKey)
	}
	if cfg.ProviderTimeout != 10*time.Second {
		t.Errorf("ProviderTimeout = %v, want 10s", cfg.ProviderTimeout)
	}
	if cfg.StatsInterval != 15*time.Minute {
		t.Errorf("StatsInterval = %v, want 15m", cfg.StatsInterval)
	}
	if cfg.CORSAllowOrigin != "http://localhost:3000" {
		t.Errorf("CORSAllowOrigin = %q", cfg.CORSAllowOrigin)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WeatherStackAPI", "key-123")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("STATS_INTERVAL", "1m")
	t.Setenv("CORS_ALLOW_ORIGIN", "https://app.example.com")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.WeatherstackAPIKey != "key-123" {
		t.Errorf("WeatherstackAPIKey = %q", cfg.WeatherstackAPIKey)
	}
	if cfg.ProviderTimeout != 3*time.Second {
		t.Errorf("ProviderTimeout = %v, want 3s", cfg.ProviderTimeout)
	}
	if cfg.StatsInterval != time.Minute {
		t.Errorf("StatsInterval = %v, want 1m", cfg.StatsInterval)
	}
	if cfg.CORSAllowOrigin != "https://app.example.com" {
		t.Errorf("CORSAllowOrigin = %q", cfg.CORSAllowOrigin)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
}

func TestLoadInvalidProviderTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROVIDER_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid PROVIDER_TIMEOUT")
	}
}

func TestLoadInvalidStatsInterval(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATS_INTERVAL", "often")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid STATS_INTERVAL")
	}
}
