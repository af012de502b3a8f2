package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/weekjournal/internal/flagx"
)

// parseFlags applies command-line flags. Token lifetimes are given in minutes.
//
//	-a  gRPC address          -o  ops HTTP address
//	-d  PostgreSQL DSN        -s  JWT secret
//	-t  access token minutes  -r  refresh token minutes
//	-u  S3 user               -p  S3 password
//	-b  S3 bucket             -g  S3 region
//	-e  S3 endpoint           -l  log backend (slog|zerolog)
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-o", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC listen address")
	fs.StringVar(&config.OpsAddrHTTP, "o", config.OpsAddrHTTP, "ops HTTP listen address (health, metrics)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT signing key")

	accessMinutes := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (minutes)")
	refreshMinutes := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket for archives")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 endpoint")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend: slog or zerolog")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.AccessTokenValidityDuration = time.Duration(*accessMinutes) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshMinutes) * time.Minute
	return nil
}
