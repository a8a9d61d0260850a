// Package config loads the tunespace sampling server configuration from the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is the full server configuration.
type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	HTTP        struct {
		Port            int           `env:"HTTP_PORT" envDefault:"8080"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	}
	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	Sampling struct {
		// MaxPoints caps n_points per request so a single call cannot pin
		// the server.
		MaxPoints int `env:"SAMPLE_MAX_POINTS" envDefault:"100000"`
	}
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.Sampling.MaxPoints < 1 {
		return nil, fmt.Errorf("SAMPLE_MAX_POINTS must be positive, got %d", cfg.Sampling.MaxPoints)
	}

	return cfg, nil
}
