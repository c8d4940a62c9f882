// Package config loads client configuration from
// ~/.garagectl/config.yaml with defaults for anything missing, then
// applies .env and process-environment overrides. Config problems warn
// and fall back; they never stop the program.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config is the full client configuration.
type Config struct {
	API      APIConfig `yaml:"api"`
	Locale   string    `yaml:"locale"`
	Currency string    `yaml:"currency"`
	NoColor  bool      `yaml:"no_color"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://api.autocare.example.com",
			TimeoutSeconds: 15,
		},
		Locale:   "en",
		Currency: "USD",
	}
}

// Dir returns the config directory, honoring GARAGECTL_HOME.
func Dir() (string, error) {
	if dir := os.Getenv("GARAGECTL_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".garagectl"), nil
}

// Load reads config.yaml from the given directory and applies
// environment overrides. A missing file yields defaults; an unreadable
// or invalid file warns and yields defaults.
func Load(configDir string) *Config {
	cfg := Default()

	path := filepath.Join(filepath.Clean(configDir), "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: defaults plus env are all we need.
	case err != nil:
		slog.Warn("failed to read config, using defaults", "path", path, "error", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			slog.Warn("invalid config yaml, using defaults", "path", path, "error", err)
			cfg = Default()
		}
	}

	applyEnv(cfg)
	return cfg
}

// applyEnv overlays .env and process environment values. Env always
// wins over the yaml file.
func applyEnv(cfg *Config) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv("GARAGE_API_URL"); v != "" {
		cfg.API.BaseURL = cast.ToString(v)
	}
	if v := os.Getenv("GARAGE_API_TIMEOUT"); v != "" {
		if secs := cast.ToInt(v); secs > 0 {
			cfg.API.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("GARAGE_LOCALE"); v != "" {
		cfg.Locale = cast.ToString(v)
	}
	if v := os.Getenv("GARAGE_CURRENCY"); v != "" {
		cfg.Currency = cast.ToString(v)
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
}
