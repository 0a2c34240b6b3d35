// Package config loads elementvision configuration from YAML with
// environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all elementvision configuration.
type Config struct {
	// LLM configuration for enriched lookups
	LLM LLMConfig `yaml:"llm"`

	// Resolver behavior
	Resolver ResolverConfig `yaml:"resolver"`

	// Persistent cache for enriched records
	Cache CacheConfig `yaml:"cache"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LLMConfig configures the Gemini client.
type LLMConfig struct {
	APIKey          string `yaml:"api_key"`
	Model           string `yaml:"model"`
	BaseURL         string `yaml:"base_url"`
	Timeout         string `yaml:"timeout"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
}

// ResolverConfig configures lookup behavior.
type ResolverConfig struct {
	// Mode is "strict" or "enriched".
	Mode string `yaml:"mode"`
}

// CacheConfig configures the SQLite cache for enriched records.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// UIConfig configures the terminal dashboard.
type UIConfig struct {
	// Locale is "en" or "zh".
	Locale string `yaml:"locale"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:           "gemini-3-flash-preview",
			BaseURL:         "https://generativelanguage.googleapis.com/v1beta",
			Timeout:         "60s",
			MaxOutputTokens: 8192,
		},
		Resolver: ResolverConfig{
			Mode: "enriched",
		},
		Cache: CacheConfig{
			Enabled: false,
			Path:    "data/elementvision.db",
		},
		UI: UIConfig{
			Locale: "zh",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist. Environment overrides apply last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports configuration values outside their closed sets.
func (c *Config) Validate() error {
	switch c.Resolver.Mode {
	case "strict", "enriched":
	default:
		return fmt.Errorf("invalid resolver mode %q (want strict or enriched)", c.Resolver.Mode)
	}

	switch c.UI.Locale {
	case "en", "zh":
	default:
		return fmt.Errorf("invalid ui locale %q (want en or zh)", c.UI.Locale)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}

	if c.LLM.Timeout != "" {
		if _, err := time.ParseDuration(c.LLM.Timeout); err != nil {
			return fmt.Errorf("invalid llm timeout %q: %w", c.LLM.Timeout, err)
		}
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if model := os.Getenv("ELEMENTVISION_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if mode := os.Getenv("ELEMENTVISION_MODE"); mode != "" {
		c.Resolver.Mode = mode
	}
	if locale := os.Getenv("ELEMENTVISION_LOCALE"); locale != "" {
		c.UI.Locale = locale
	}
	if path := os.Getenv("ELEMENTVISION_DB"); path != "" {
		c.Cache.Path = path
		c.Cache.Enabled = true
	}
}

// GetLLMTimeout returns the LLM timeout as a duration.
func (c *Config) GetLLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil {
		return 60 * time.Second
	}
	return d
}
