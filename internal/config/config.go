// Package config provides configuration loading for querydeck.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvBaseURL overrides the configured backend base URL when set.
const EnvBaseURL = "QUERYDECK_BASE_URL"

// Config is the on-disk application configuration.
type Config struct {
	Version int           `toml:"version"`
	Debug   bool          `toml:"debug"`
	Backend BackendConfig `toml:"backend"`
	UI      UIConfig      `toml:"ui"`
}

// BackendConfig holds the remote search service settings.
type BackendConfig struct {
	BaseURL        string `toml:"base_url"`
	SuggestPath    string `toml:"suggest_path"`
	SearchPath     string `toml:"search_path"`
	PageSize       int    `toml:"page_size"`
	SuggestCount   int    `toml:"suggest_count"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DebounceMs   int  `toml:"debounce_ms"`
	ContentWidth int  `toml:"content_width"` // result content truncation limit
	ShowTimings  bool `toml:"show_timings"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Backend: BackendConfig{
			BaseURL:        "http://localhost:9200",
			SuggestPath:    "/api/suggest",
			SearchPath:     "/api/search",
			PageSize:       10,
			SuggestCount:   10,
			TimeoutSeconds: 30,
		},
		UI: UIConfig{
			DebounceMs:   150,
			ContentWidth: 500,
			ShowTimings:  true,
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "querydeck", "config.toml")
}

// Load reads the config at path. A missing file yields the defaults.
// The QUERYDECK_BASE_URL environment variable, when set, overrides the
// configured base URL either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file, defaults apply.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		applyDefaults(cfg)
	}

	if base := os.Getenv(EnvBaseURL); base != "" {
		cfg.Backend.BaseURL = base
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// applyDefaults fills fields a partial config file left at zero.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Version == 0 {
		cfg.Version = def.Version
	}
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = def.Backend.BaseURL
	}
	if cfg.Backend.SuggestPath == "" {
		cfg.Backend.SuggestPath = def.Backend.SuggestPath
	}
	if cfg.Backend.SearchPath == "" {
		cfg.Backend.SearchPath = def.Backend.SearchPath
	}
	if cfg.Backend.PageSize <= 0 {
		cfg.Backend.PageSize = def.Backend.PageSize
	}
	if cfg.Backend.SuggestCount <= 0 {
		cfg.Backend.SuggestCount = def.Backend.SuggestCount
	}
	if cfg.Backend.TimeoutSeconds <= 0 {
		cfg.Backend.TimeoutSeconds = def.Backend.TimeoutSeconds
	}
	if cfg.UI.DebounceMs <= 0 {
		cfg.UI.DebounceMs = def.UI.DebounceMs
	}
	if cfg.UI.ContentWidth <= 0 {
		cfg.UI.ContentWidth = def.UI.ContentWidth
	}
}
