// Package config loads runtime settings for the dontrack tooling from the
// environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config is the full environment surface of the dontrack commands.
type Config struct {
	// DatabasePath is the sqlite file holding the ledger state.
	DatabasePath string `env:"DONTRACK_DB_PATH" envDefault:"dontrack.db"`
	// AdminAddress seeds the admin identity on first run.
	AdminAddress string `env:"DONTRACK_ADMIN"`
	// RegistrationFee is the initial fee in whole tokens, decimals allowed.
	RegistrationFee string `env:"DONTRACK_REGISTRATION_FEE" envDefault:"1"`
	// LogLevel is any zerolog level name (debug, info, warn, error).
	LogLevel string `env:"DONTRACK_LOG_LEVEL" envDefault:"info"`
	// LogPretty switches from JSON to human-readable console output.
	LogPretty bool `env:"DONTRACK_LOG_PRETTY" envDefault:"false"`
}

// Load parses the environment into a Config.
// Example payload: cfg, err := config.Load()
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Level resolves the configured log level, falling back to info on junk.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
