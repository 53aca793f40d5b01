package models

import "time"

// SyncMetadata is the singleton bookkeeping record for the local cache.
type SyncMetadata struct {
	// LastSyncAt is the time of the last fully successful queue replay.
	// Zero when the cache has never synced.
	LastSyncAt time.Time `json:"last_sync_at" db:"last_sync_at"`

	// UserID is the owning user, taken from the bearer token's subject claim.
	UserID int64 `json:"user_id" db:"user_id"`

	// DeviceID is a locally generated UUID identifying this cache instance
	// to the remote service. Persisted on first open.
	DeviceID string `json:"device_id" db:"device_id"`

	// SchemaVersion is the local schema revision the cache was written with.
	SchemaVersion int `json:"schema_version" db:"schema_version"`
}

// UsageSummary reports a best-effort per-collection record count plus the
// pending queue depth. Counts taken under concurrent writes may be slightly
// stale; the summary is diagnostic only.
type UsageSummary struct {
	Counts     map[Collection]int64 `json:"counts"`
	QueueDepth int64                `json:"queue_depth"`
}
