package app

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "grocerease"

// Config carries process-level settings sourced from the environment
// (GROCEREASE_DB, GROCEREASE_LOG_LEVEL). A local .env file is honored when
// present.
type Config struct {
	DBPath   string `envconfig:"DB"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parse environment config: %w", err)
	}
	return &cfg, nil
}
