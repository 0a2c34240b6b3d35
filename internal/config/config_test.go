package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY", "ELEMENTVISION_MODEL", "ELEMENTVISION_MODE",
		"ELEMENTVISION_LOCALE", "ELEMENTVISION_DB",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	clearEnv(t)
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-3-flash-preview", cfg.LLM.Model)
	assert.Equal(t, "enriched", cfg.Resolver.Mode)
	assert.Equal(t, "zh", cfg.UI.Locale)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 60*time.Second, cfg.GetLLMTimeout())
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
llm:
  model: gemini-3-pro
  timeout: 90s
resolver:
  mode: strict
cache:
  enabled: true
  path: /tmp/ev.db
ui:
  locale: en
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-3-pro", cfg.LLM.Model)
	assert.Equal(t, 90*time.Second, cfg.GetLLMTimeout())
	assert.Equal(t, "strict", cfg.Resolver.Mode)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "en", cfg.UI.Locale)
	// Untouched sections keep defaults.
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.LLM.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [not a mapping"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("GEMINI_API_KEY sets the key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "test-key")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "test-key", cfg.LLM.APIKey)
	})

	t.Run("env wins over file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ELEMENTVISION_MODE", "strict")
		t.Setenv("ELEMENTVISION_LOCALE", "en")

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("resolver:\n  mode: enriched\nui:\n  locale: zh\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "strict", cfg.Resolver.Mode)
		assert.Equal(t, "en", cfg.UI.Locale)
	})

	t.Run("ELEMENTVISION_DB enables the cache", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ELEMENTVISION_DB", "/tmp/other.db")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Cache.Enabled)
		assert.Equal(t, "/tmp/other.db", cfg.Cache.Path)
	})

	t.Run("empty env vars change nothing", func(t *testing.T) {
		clearEnv(t)
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, DefaultConfig(), cfg)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"strict mode passes", func(c *Config) { c.Resolver.Mode = "strict" }, false},
		{"unknown mode", func(c *Config) { c.Resolver.Mode = "fuzzy" }, true},
		{"unknown locale", func(c *Config) { c.UI.Locale = "fr" }, true},
		{"unknown log level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"bad timeout", func(c *Config) { c.LLM.Timeout = "fast" }, true},
		{"empty timeout tolerated", func(c *Config) { c.LLM.Timeout = "" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Resolver.Mode = "strict"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestGetLLMTimeout_FallsBack(t *testing.T) {
	cfg := &Config{LLM: LLMConfig{Timeout: "bogus"}}
	assert.Equal(t, 60*time.Second, cfg.GetLLMTimeout())
}
