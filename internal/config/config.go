// Package config loads CLI configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's settings. The engine itself takes everything it
// needs as arguments; config only wires the caller's environment.
type Config struct {
	// HabitsPath is the JSON habit snapshot the commands analyze.
	HabitsPath string `yaml:"habits_path"`

	// UsageStorePath is the SQLite file for used-recommendation keys.
	// Empty means an in-memory store (no persistence between runs).
	UsageStorePath string `yaml:"usage_store_path,omitempty"`

	// MaxInsights overrides the ranked insight cap when > 0.
	MaxInsights int `yaml:"max_insights,omitempty"`

	// ForecastDays is the default forecast horizon.
	ForecastDays int `yaml:"forecast_days,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		HabitsPath:   "habits.json",
		ForecastDays: 7,
	}
}

// Load reads a YAML config file, applying defaults for unset fields.
// A missing file returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the CLI cannot work with.
func (c *Config) Validate() error {
	if c.HabitsPath == "" {
		return fmt.Errorf("habits_path must not be empty")
	}
	if c.MaxInsights < 0 {
		return fmt.Errorf("max_insights must not be negative")
	}
	if c.ForecastDays < 0 {
		return fmt.Errorf("forecast_days must not be negative")
	}
	if c.ForecastDays == 0 {
		c.ForecastDays = 7
	}
	return nil
}
