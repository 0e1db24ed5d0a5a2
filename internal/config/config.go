// Package config loads yultool settings from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = ".yultool.yaml"

// Config holds all yultool configuration.
type Config struct {
	Renumber RenumberConfig `yaml:"renumber"`
	Dump     DumpConfig     `yaml:"dump"`
}

// RenumberConfig configures the page renumbering traversal.
type RenumberConfig struct {
	// TempSuffix is appended to a file's name to form the temporary file
	// used during a live rewrite.
	TempSuffix string `yaml:"temp_suffix"`

	// MaxDepth bounds insertion nesting.
	MaxDepth int `yaml:"max_depth"`
}

// DumpConfig configures the core-image dumper.
type DumpConfig struct {
	// Columns is the number of words per output row.
	Columns int `yaml:"columns"`
}

func DefaultConfig() *Config {
	return &Config{
		Renumber: RenumberConfig{
			TempSuffix: ".renumber",
			MaxDepth:   64,
		},
		Dump: DumpConfig{
			Columns: 8,
		},
	}
}

// Load reads configuration from a YAML file, returning defaults when the
// file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

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
	return cfg, nil
}
