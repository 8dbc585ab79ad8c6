// Package config loads the dbf2sheet decode profile from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the decode profile applied to every file the CLI touches.
// Flags override individual values at the command layer.
type Config struct {
	// Encoding forces a charset by name instead of honoring each file's
	// language driver id. Empty keeps the per-file declaration.
	Encoding string `yaml:"encoding"`
	// Workers is the record decode parallelism; 0 or 1 decodes
	// sequentially.
	Workers int     `yaml:"workers"`
	Logging Logging `yaml:"logging"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the profile used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads the profile at path on top of the defaults. An empty
// path means no file was requested and yields the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
