package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server settings loaded from the environment.
type Config struct {
	Port       int    `env:"PORT" envDefault:"8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	StartLevel int    `env:"START_LEVEL" envDefault:"1"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
