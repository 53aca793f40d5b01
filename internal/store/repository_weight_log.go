package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/models"
)

// weightLogRepository executes body-weight CRUD operations against the
// "weight_logs" table.
type weightLogRepository struct {
	*DB
	logger *logger.Logger
}

func newWeightLogRepository(db *DB, logger *logger.Logger) *weightLogRepository {
	return &weightLogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *weightLogRepository) Upsert(ctx context.Context, ex execer, entry models.WeightLog) error {
	log := logger.FromContext(ctx)

	_, err := ex.ExecContext(ctx, upsertWeightLog,
		entry.MeasuredAt,
		entry.WeightKg,
		entry.Note,
	)
	if err != nil {
		log.Err(err).
			Str("func", "weightLogRepository.Upsert").
			Str("measured_at", entry.MeasuredAt).
			Msg("failed to execute upsert for weight log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}

func (r *weightLogRepository) Get(ctx context.Context, date string) (models.WeightLog, error) {
	log := logger.FromContext(ctx)

	var entry models.WeightLog
	row := r.DB.QueryRowContext(ctx, getWeightLog, date)

	scanErr := row.Scan(
		&entry.MeasuredAt,
		&entry.WeightKg,
		&entry.Note,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.WeightLog{}, fmt.Errorf("%w: weight log %s", ErrNotFound, date)
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "weightLogRepository.Get").
			Str("measured_at", date).
			Msg("failed to scan weight log row")
		return models.WeightLog{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return entry, nil
}

// Between returns weight logs measured within [from, to] inclusive, in
// ascending date order. Either bound may be empty for an open-ended range.
func (r *weightLogRepository) Between(ctx context.Context, from, to string) ([]models.WeightLog, error) {
	query, args, err := buildDateRangeQuery("weight_logs", "measured_at", weightLogColumns, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "weightLogRepository.Between", query, args...)
}

// Recent returns at most limit weight logs in descending date order. A
// non-positive limit returns nothing.
func (r *weightLogRepository) Recent(ctx context.Context, limit int) ([]models.WeightLog, error) {
	if limit <= 0 {
		return nil, nil
	}
	query, args, err := buildRecentQuery("weight_logs", "measured_at", weightLogColumns, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "weightLogRepository.Recent", query, args...)
}

func (r *weightLogRepository) list(ctx context.Context, caller, query string, args ...any) ([]models.WeightLog, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute weight log list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, classifySQLiteError(err))
	}
	defer rows.Close()

	var items []models.WeightLog

	for rows.Next() {
		var entry models.WeightLog

		scanErr := rows.Scan(
			&entry.MeasuredAt,
			&entry.WeightKg,
			&entry.Note,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan weight log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *weightLogRepository) Delete(ctx context.Context, ex execer, date string) error {
	log := logger.FromContext(ctx)

	_, err := ex.ExecContext(ctx, deleteWeightLog, date)
	if err != nil {
		log.Err(err).
			Str("func", "weightLogRepository.Delete").
			Str("measured_at", date).
			Msg("failed to execute delete for weight log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}

func (r *weightLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM weight_logs;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}
