package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := Load(t.TempDir())

	def := Default()
	if cfg.API.BaseURL != def.API.BaseURL {
		t.Errorf("BaseURL = %q, want default %q", cfg.API.BaseURL, def.API.BaseURL)
	}
	if cfg.Locale != "en" || cfg.Currency != "USD" {
		t.Errorf("locale/currency = %q/%q, want en/USD", cfg.Locale, cfg.Currency)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("api:\n  base_url: https://staging.example.com\n  timeout_seconds: 30\nlocale: de\ncurrency: EUR\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(dir)
	if cfg.API.BaseURL != "https://staging.example.com" {
		t.Errorf("BaseURL = %q, want staging url", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", cfg.API.Timeout())
	}
	if cfg.Locale != "de" || cfg.Currency != "EUR" {
		t.Errorf("locale/currency = %q/%q, want de/EUR", cfg.Locale, cfg.Currency)
	}
}

func TestLoadInvalidYAMLFallsBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(dir)
	if cfg.API.BaseURL != Default().API.BaseURL {
		t.Errorf("invalid yaml must fall back to defaults, got %q", cfg.API.BaseURL)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GARAGE_API_URL", "https://env.example.com")
	t.Setenv("GARAGE_API_TIMEOUT", "45")
	t.Setenv("GARAGE_CURRENCY", "GBP")

	cfg := Load(t.TempDir())
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q, want env override", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 45 {
		t.Errorf("TimeoutSeconds = %d, want 45", cfg.API.TimeoutSeconds)
	}
	if cfg.Currency != "GBP" {
		t.Errorf("Currency = %q, want GBP", cfg.Currency)
	}
}

func TestZeroTimeoutMeansDefault(t *testing.T) {
	var a APIConfig
	if got := a.Timeout(); got != 0 {
		t.Errorf("Timeout() = %v, want 0 (client applies its default)", got)
	}
}
