package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/weekjournal/internal/envelope"
)

type Config struct {
	ServerEndpointAddr  string        `envconfig:"SERVER_ADDR"`
	OnlineCheckInterval time.Duration `envconfig:"ONLINE_CHECK_INTERVAL"`
	LocalDatabasePath   string        `envconfig:"DB_PATH"`
	EnvelopeFormat      string        `envconfig:"ENVELOPE_FORMAT"`
	// EnvelopeIterations is the PBKDF2 count for new aead envelopes.
	EnvelopeIterations  int           `envconfig:"ENVELOPE_ITERATIONS"`
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.LocalDatabasePath = "journal.db"
	c.EnvelopeFormat = string(envelope.FormatLegacy)
	c.EnvelopeIterations = envelope.LegacyIterations
}

// LoadConfig applies defaults, the JSON file, the environment and flags, in
// that order, and validates the envelope settings.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if _, err := envelope.ParseFormat(cfg.EnvelopeFormat); err != nil {
		return nil, err
	}
	if cfg.EnvelopeIterations < envelope.LegacyIterations || cfg.EnvelopeIterations > envelope.MaxIterations {
		return nil, fmt.Errorf("envelope iterations must be between %d and %d, got %d",
			envelope.LegacyIterations, envelope.MaxIterations, cfg.EnvelopeIterations)
	}
	return cfg, nil
}
