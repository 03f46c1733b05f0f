// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/comalice/signalx"
)

// Config is the environment configuration shared by the commands.
type Config struct {
	LogLevel    string        `env:"SIGNALX_LOG_LEVEL" envDefault:"info"`
	LogFormat   string        `env:"SIGNALX_LOG_FORMAT" envDefault:"text"`
	Propagation string        `env:"SIGNALX_PROPAGATION" envDefault:"edge"`
	TickRate    time.Duration `env:"SIGNALX_TICK_RATE" envDefault:"16ms"`
	MaxRequests int           `env:"SIGNALX_MAX_REQUESTS_PER_TICK" envDefault:"1000"`
	MetricsAddr string        `env:"SIGNALX_METRICS_ADDR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment and checks its values.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Mode(); err != nil {
		return Config{}, err
	}
	if cfg.TickRate <= 0 {
		return Config{}, fmt.Errorf("SIGNALX_TICK_RATE must be positive, got %s", cfg.TickRate)
	}
	if cfg.MaxRequests <= 0 {
		return Config{}, fmt.Errorf("SIGNALX_MAX_REQUESTS_PER_TICK must be positive, got %d", cfg.MaxRequests)
	}
	return cfg, nil
}

// Mode returns the configured propagation mode.
func (c Config) Mode() (signalx.Mode, error) {
	return signalx.ParseMode(c.Propagation)
}
