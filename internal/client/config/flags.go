package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/weekjournal/internal/flagx"
)

func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-f", "-m", "-n"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LocalDatabasePath, "f", cfg.LocalDatabasePath, "local database file")
	fs.StringVar(&cfg.EnvelopeFormat, "m", cfg.EnvelopeFormat, "envelope format for new saves (legacy|aead)")
	fs.IntVar(&cfg.EnvelopeIterations, "n", cfg.EnvelopeIterations, "PBKDF2 iterations for aead envelopes")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	return nil
}
