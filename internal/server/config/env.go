package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every server environment variable, e.g. JOURNAL_DATABASE_DSN.
const EnvPrefix = "JOURNAL"

// parseEnv overlays variables that are set; unset ones leave config untouched.
func parseEnv(config *Config) error {
	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}
