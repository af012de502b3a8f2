// Package config loads runtime configuration for the journal CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. JOURNAL_CLIENT_* environment variables.
//  4. Command-line flags.
//
// Flags:
//
//	-a string   address:port of the journal gRPC endpoint
//	-i int      online status check interval (seconds)
//	-f string   path of the local SQLite database
//	-m string   envelope format for new saves: legacy or aead
//
// JSON example:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "local_database_path": "journal.db",
//	  "envelope_format": "aead"
//	}
package config
