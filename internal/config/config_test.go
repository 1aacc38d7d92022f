package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Codeforces.BaseURL != "https://codeforces.com/api" {
		t.Fatalf("unexpected base url: %s", cfg.Codeforces.BaseURL)
	}
	if cfg.Codeforces.MinInterval != 400*time.Millisecond {
		t.Fatalf("unexpected min interval: %v", cfg.Codeforces.MinInterval)
	}
	if cfg.Server.Port != 30080 {
		t.Fatalf("unexpected port: %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CF_MIN_INTERVAL_MS", "250")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://cf.example.com, https://cf2.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Codeforces.MinInterval != 250*time.Millisecond {
		t.Fatalf("unexpected min interval: %v", cfg.Codeforces.MinInterval)
	}
	if len(cfg.Server.AllowOrigins) != 2 || cfg.Server.AllowOrigins[0] != "https://cf.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.Server.AllowOrigins)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("CF_MIN_INTERVAL_MS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for zero interval")
	}
}
