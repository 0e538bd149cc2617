package app

import (
	"fmt"
	"strings"
)

// DefaultAlgorithm is the initial algorithm of the built-in sort scenario.
const DefaultAlgorithm = "ascending"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPaths are files or directories holding .hcl or .yaml definitions.
	// Empty means the built-in scenario.
	ConfigPaths []string
	// Algorithm is the initial algorithm used when no sort is configured.
	Algorithm string
	// PrintConfig makes Run print the effective configuration as HCL
	// instead of running it.
	PrintConfig bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Algorithm == "" {
		cfg.Algorithm = DefaultAlgorithm
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return &cfg, nil
}
