package config

import "errors"

// Validation sentinel errors returned by [ClientConfig.validate]. Callers
// should match them with [errors.Is].
var (
	// ErrInvalidStorageConfigs is returned when the local cache database path
	// is missing from every configuration source.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database path is required")

	// ErrInvalidRemoteConfigs is returned when the remote data service address
	// or request timeout is missing.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configs: address and request timeout are required")

	// ErrInvalidWorkerConfigs is returned when the replay job interval is
	// missing or zero.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configs: sync interval is required")
)
