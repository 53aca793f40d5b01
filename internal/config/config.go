// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Albert Shakirov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-fit-keeper client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the bearer token used
	// against the remote data service and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds address and timeout settings for the remote data service.
	Remote Remote `envPrefix:"REMOTE_"`

	// Workers holds configuration for background replay workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Debug holds settings for the optional local diagnostics endpoint.
	Debug Debug `envPrefix:"DEBUG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Token is the bearer token presented to the remote data service.
	// May be empty at startup; the cache then operates offline-only until a
	// token is supplied.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local cache database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite file path (e.g. "~/.fitkeeper/cache.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Remote holds network and timeout settings for the remote data service.
type Remote struct {
	// HTTPAddress is the base address of the remote data service,
	// in "host:port" or full URL form.
	// Env: REMOTE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before it is cancelled (e.g. "15s", "1m").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background replay job.
type Workers struct {
	// SyncInterval defines how often the pending-mutation queue is replayed
	// against the remote data service (e.g. "5m").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Debug holds settings for the local diagnostics HTTP endpoint.
type Debug struct {
	// HTTPAddress is the TCP address the diagnostics server listens on
	// (e.g. "127.0.0.1:6060"). Empty disables the endpoint.
	// Env: DEBUG_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
