package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON are strings accepted by time.ParseDuration (e.g. "30s").
	jsonBody := `{
		"app": {
			"token": "bearer_token",
			"version": "1.2.3"
		},
		"remote": {
			"http_address": "localhost:8080",
			"request_timeout": "15s"
		},
		"storage": {
			"db": { "dsn": "/var/lib/fitkeeper/cache.db" }
		},
		"workers": {
			"sync_interval": "5m"
		},
		"debug": {
			"http_address": "127.0.0.1:6060"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "bearer_token", cfg.App.Token)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Remote.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Remote.RequestTimeout)

	assert.Equal(t, "/var/lib/fitkeeper/cache.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)

	assert.Equal(t, "127.0.0.1:6060", cfg.Debug.HTTPAddress)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")

	// Numeric durations are interpreted as nanoseconds.
	jsonBody := `{"remote": {"http_address": "localhost:8080", "request_timeout": 1000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Remote.RequestTimeout)
}
