package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/models"
)

// metaRepository manages the singleton "sync_metadata" row. The row is seeded
// by the initial migration, so reads never miss.
type metaRepository struct {
	*DB
	logger *logger.Logger
}

func newMetaRepository(db *DB, logger *logger.Logger) *metaRepository {
	return &metaRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *metaRepository) Get(ctx context.Context) (models.SyncMetadata, error) {
	log := logger.FromContext(ctx)

	var (
		meta       models.SyncMetadata
		lastSyncAt sql.NullTime
	)

	row := r.DB.QueryRowContext(ctx, getSyncMetadata)
	scanErr := row.Scan(
		&lastSyncAt,
		&meta.UserID,
		&meta.DeviceID,
		&meta.SchemaVersion,
	)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "metaRepository.Get").
			Msg("failed to scan sync metadata row")
		return models.SyncMetadata{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	if lastSyncAt.Valid {
		meta.LastSyncAt = lastSyncAt.Time.UTC()
	}

	return meta, nil
}

func (r *metaRepository) SetLastSync(ctx context.Context, ex execer, at time.Time) error {
	log := logger.FromContext(ctx)

	_, err := ex.ExecContext(ctx, setLastSyncAt, at.UTC())
	if err != nil {
		log.Err(err).
			Str("func", "metaRepository.SetLastSync").
			Msg("failed to update last sync time")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}

func (r *metaRepository) SetOwner(ctx context.Context, ex execer, userID int64) error {
	log := logger.FromContext(ctx)

	_, err := ex.ExecContext(ctx, setOwnerUserID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "metaRepository.SetOwner").
			Int64("user_id", userID).
			Msg("failed to update owner user id")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}

// EnsureDevice assigns a freshly generated device id if none is persisted yet.
// The UPDATE is guarded on an empty device_id, so concurrent opens agree on a
// single id; the persisted value is returned either way.
func (r *metaRepository) EnsureDevice(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	candidate := uuid.NewString()
	if _, err := r.DB.ExecContext(ctx, setDeviceID, candidate); err != nil {
		log.Err(err).
			Str("func", "metaRepository.EnsureDevice").
			Msg("failed to persist device id")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	meta, err := r.Get(ctx)
	if err != nil {
		return "", err
	}

	return meta.DeviceID, nil
}

// Reset clears the sync bookkeeping back to the never-synced state. Device id
// and schema version survive a reset.
func (r *metaRepository) Reset(ctx context.Context, ex execer) error {
	log := logger.FromContext(ctx)

	_, err := ex.ExecContext(ctx, resetSyncMetadata)
	if err != nil {
		log.Err(err).
			Str("func", "metaRepository.Reset").
			Msg("failed to reset sync metadata")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}
