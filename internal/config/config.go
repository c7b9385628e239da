// Package config loads tableshaper settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvDataDir = "TABLESHAPER_DATA_DIR"
	EnvFormat  = "TABLESHAPER_FORMAT"
)

// Config holds all tableshaper configuration.
type Config struct {
	// DataDir is the directory of CSV and xlsx datasets.
	DataDir string `yaml:"data_dir"`
	// Format is the default presentation: table, bar or stacked-bar.
	Format string `yaml:"format"`
	// Broadband is the dataset holding broadband records.
	Broadband string `yaml:"broadband"`
	// Pretty enables indented JSON output.
	Pretty bool `yaml:"pretty"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir:   "data",
		Format:    "table",
		Broadband: "broadband",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file over the defaults and applies environment
// overrides. A missing file is not an error when path is empty.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
}
