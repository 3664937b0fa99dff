// Package config loads the obralens YAML configuration: where the dataset
// CSVs live, where the query log goes, and how chatty the logs are.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the conventional config file name.
const DefaultFile = "obralens.yaml"

// Config holds the full application configuration.
type Config struct {
	// DataDir is scanned for the six conventional CSV files.
	DataDir string `yaml:"data_dir"`
	// Datasets overrides individual CSV paths (collection name → path).
	Datasets map[string]string `yaml:"datasets"`
	// QueryLog is the SQLite query-log path. Empty disables the sink.
	QueryLog string `yaml:"query_log"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// Charts toggles the default chart builder.
	Charts bool `yaml:"charts"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:  "data",
		LogLevel: "info",
		Charts:   true,
	}
}

// Load reads the config file at path, layered over the defaults. A missing
// file is not an error — defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
