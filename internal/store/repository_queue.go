package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/models"
)

// queueRepository executes pending-mutation bookkeeping against the
// "sync_queue" table. Entries are append-only; the only mutations are the
// removal of a replayed entry and the full clear.
type queueRepository struct {
	*DB
	logger *logger.Logger
}

func newQueueRepository(db *DB, logger *logger.Logger) *queueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

// Insert appends entry to the queue and returns the assigned id. The payload
// is stored as JSON so the entry survives process restarts intact.
func (r *queueRepository) Insert(ctx context.Context, ex execer, entry models.QueueEntry) (int64, error) {
	log := logger.FromContext(ctx)

	if err := entry.Payload.Validate(entry.Entity); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	rawPayload, err := json.Marshal(entry.Payload)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Insert").
			Str("entity", string(entry.Entity)).
			Msg("failed to encode queue payload")
		return 0, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	res, err := ex.ExecContext(ctx, insertQueueEntry,
		entry.Entity,
		entry.Op,
		string(rawPayload),
		entry.QueuedAt.UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Insert").
			Str("entity", string(entry.Entity)).
			Str("op", string(entry.Op)).
			Msg("failed to execute insert for queue entry")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// List returns every pending entry in replay order: ascending enqueue time,
// ties broken by insertion id.
func (r *queueRepository) List(ctx context.Context) ([]models.QueueEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listQueueEntries)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.List").
			Msg("failed to execute query for queue entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, classifySQLiteError(err))
	}
	defer rows.Close()

	var entries []models.QueueEntry

	for rows.Next() {
		var (
			entry      models.QueueEntry
			rawPayload string
			queuedAt   time.Time
		)

		scanErr := rows.Scan(
			&entry.ID,
			&entry.Entity,
			&entry.Op,
			&rawPayload,
			&queuedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "queueRepository.List").
				Msg("failed to scan queue entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if err := json.Unmarshal([]byte(rawPayload), &entry.Payload); err != nil {
			log.Err(err).
				Str("func", "queueRepository.List").
				Int64("queue_id", entry.ID).
				Msg("failed to decode queue payload")
			return nil, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
		}
		entry.QueuedAt = queuedAt.UTC()

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "queueRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// Remove deletes the entry under id. Removing an id that is no longer present
// is not an error; replay may race a concurrent clear.
func (r *queueRepository) Remove(ctx context.Context, ex execer, id int64) error {
	log := logger.FromContext(ctx)

	_, err := ex.ExecContext(ctx, removeQueueEntry, id)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Remove").
			Int64("queue_id", id).
			Msg("failed to execute delete for queue entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}

// Clear drops every pending entry.
func (r *queueRepository) Clear(ctx context.Context, ex execer) error {
	log := logger.FromContext(ctx)

	_, err := ex.ExecContext(ctx, clearQueueEntries)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Clear").
			Msg("failed to execute queue clear")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}

// Depth returns the number of pending entries.
func (r *queueRepository) Depth(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.QueryRowContext(ctx, countQueueEntries).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}
