// Package config loads process configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the service reads from its environment.
type Config struct {
	// TableName is the config table identifier. Required.
	TableName string `env:"CONTENT_TABLE_NAME,required,notEmpty"`

	// Environment selects which ENV# partition slice is served and written.
	Environment string `env:"ENVIRONMENT" envDefault:"production"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// ListenAddr is the bind address for the local development server.
	// Unused by the Lambda entrypoint.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
