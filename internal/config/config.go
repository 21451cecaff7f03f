// Package config loads application configuration from environment
// variables. Everything is optional: with nothing set, the application
// uses the built-in menu and info-level logging.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration for the application.
type Config struct {
	// MenuFile is an optional path to a YAML menu file. Empty means the
	// built-in menu.
	MenuFile string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		MenuFile: getEnv("PIZZA_MENU_FILE", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

// getEnv returns the value of the environment variable or a fallback.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
