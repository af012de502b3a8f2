package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/weekjournal/internal/flagx"
	"github.com/dmitrijs2005/weekjournal/internal/timex"
)

// JsonConfig is the on-disk shape. Absent keys keep the current value.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	LocalDatabasePath   *string         `json:"local_database_path"`
	EnvelopeFormat      *string         `json:"envelope_format"`
	EnvelopeIterations  *int            `json:"envelope_iterations"`
}

func parseJson(cfg *Config) error {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.LocalDatabasePath != nil {
		cfg.LocalDatabasePath = *jc.LocalDatabasePath
	}
	if jc.EnvelopeFormat != nil {
		cfg.EnvelopeFormat = *jc.EnvelopeFormat
	}
	if jc.EnvelopeIterations != nil {
		cfg.EnvelopeIterations = *jc.EnvelopeIterations
	}
	return nil
}
