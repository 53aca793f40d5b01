package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Token is the bearer token presented to the remote data service.
	Token string
	// Version is the application version string.
	Version string
}

// ClientRemote holds network settings used by the remote adapter.
type ClientRemote struct {
	// HTTPAddress is the HTTP endpoint address of the remote data service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local cache database settings.
type ClientDB struct {
	// DSN is the SQLite file path used by the local cache.
	DSN string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains background replay job settings.
type ClientWorkers struct {
	// SyncInterval defines how often the replay job should run.
	SyncInterval time.Duration
}

// ClientDebug contains diagnostics endpoint settings.
type ClientDebug struct {
	// HTTPAddress is the diagnostics listen address; empty disables it.
	HTTPAddress string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Remote contains remote data service addresses and timeouts.
	Remote ClientRemote
	// Storage contains local cache storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Debug contains diagnostics endpoint settings.
	Debug ClientDebug
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Token:   cfg.App.Token,
			Version: cfg.App.Version,
		},
		Remote: ClientRemote{
			HTTPAddress:    cfg.Remote.HTTPAddress,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Debug:   ClientDebug{HTTPAddress: cfg.Debug.HTTPAddress},
	}

	return clientCfg, clientCfg.validate()
}
