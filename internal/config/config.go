// Package config loads runtime configuration from the environment and,
// optionally, a scan manifest file describing asset roots.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration.
type Config struct {
	Scan    ScanConfig
	Logging LogConfig
}

// ScanConfig holds asset scanning configuration.
type ScanConfig struct {
	Root     string `envconfig:"ASSETFS_ROOT" default:"."`
	DataDir  string `envconfig:"ASSETFS_DATA_DIR" default:""`
	Manifest string `envconfig:"ASSETFS_MANIFEST" default:""`
	Compress bool   `envconfig:"ASSETFS_COMPRESS" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"ASSETFS_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"ASSETFS_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Root: ".",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
