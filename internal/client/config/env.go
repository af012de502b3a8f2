package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "JOURNAL_CLIENT"

func parseEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}
