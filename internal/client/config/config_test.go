package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"journal"}, args...)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	b, err := json.Marshal(data)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "journal.db", c.LocalDatabasePath)
	assert.Equal(t, "legacy", c.EnvelopeFormat)
	assert.Equal(t, 10000, c.EnvelopeIterations)
}

func TestLoadConfig_NoSources(t *testing.T) {
	withArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	want := &Config{}
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_endpoint_addr":  "json:9000",
		"online_check_interval": "10s",
		"local_database_path":   "/tmp/json.db",
		"envelope_iterations":   100000,
	})
	t.Setenv("JOURNAL_CLIENT_DB_PATH", "/tmp/env.db")
	t.Setenv("JOURNAL_CLIENT_ENVELOPE_FORMAT", "aead")
	withArgs(t, "-c", path, "-a", "flag:7000", "-n", "200000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		ServerEndpointAddr:  "flag:7000",
		OnlineCheckInterval: 10 * time.Second,
		LocalDatabasePath:   "/tmp/env.db",
		EnvelopeFormat:      "aead",
		EnvelopeIterations:  200000,
	}, cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("bad interval flag", func(t *testing.T) {
		withArgs(t, "-i", "abc")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unknown envelope format", func(t *testing.T) {
		withArgs(t, "-m", "rot13")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "unknown envelope format")
	})

	t.Run("iterations out of range", func(t *testing.T) {
		withArgs(t, "-n", "500")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "envelope iterations must be between")

		withArgs(t, "-n", "2000000000")
		_, err = LoadConfig()
		assert.ErrorContains(t, err, "envelope iterations must be between")
	})

	t.Run("missing json file", func(t *testing.T) {
		withArgs(t, "-config", filepath.Join(t.TempDir(), "absent.json"))
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "reading config file")
	})

	t.Run("broken json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
		withArgs(t, "-c", path)
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "parsing config file")
	})
}
