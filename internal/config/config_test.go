package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, "http://localhost:9200", cfg.Backend.BaseURL)
	require.Equal(t, 150, cfg.UI.DebounceMs)
	require.Equal(t, 500, cfg.UI.ContentWidth)
	require.True(t, cfg.UI.ShowTimings)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "querydeck", "config.toml")

	want := DefaultConfig()
	want.Backend.BaseURL = "http://search.internal:9200"
	want.Backend.PageSize = 25
	want.UI.DebounceMs = 200
	want.Debug = true

	require.NoError(t, Save(path, want), "Save should create parent directories")

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := `version = 1

[backend]
base_url = "http://example.com"
`
	require.NoError(t, os.WriteFile(path, []byte(partial), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "http://example.com", cfg.Backend.BaseURL)
	require.Equal(t, "/api/suggest", cfg.Backend.SuggestPath, "omitted fields fall back to defaults")
	require.Equal(t, 10, cfg.Backend.PageSize)
	require.Equal(t, 150, cfg.UI.DebounceMs)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is not toml = = ="), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://override:9999")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, "http://override:9999", cfg.Backend.BaseURL)
}

func TestEnvOverridesFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[backend]\nbase_url = \"http://from-file\"\n"), 0o644))

	t.Setenv(EnvBaseURL, "http://from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://from-env", cfg.Backend.BaseURL, "environment wins over the file")
}
