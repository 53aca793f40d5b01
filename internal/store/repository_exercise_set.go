package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/models"
)

// exerciseSetRepository executes set CRUD operations against the
// "exercise_sets" table.
type exerciseSetRepository struct {
	*DB
	logger *logger.Logger
}

func newExerciseSetRepository(db *DB, logger *logger.Logger) *exerciseSetRepository {
	return &exerciseSetRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert writes set by primary key, assigning a fresh id when set.ID is zero.
func (r *exerciseSetRepository) Upsert(ctx context.Context, ex execer, set models.ExerciseSet) (models.ExerciseSet, error) {
	log := logger.FromContext(ctx)

	if set.ID == 0 {
		res, err := ex.ExecContext(ctx, insertExerciseSet,
			set.ExerciseID,
			set.WeightKg,
			set.Reps,
			set.RPE,
			set.Notes,
		)
		if err != nil {
			log.Err(err).
				Str("func", "exerciseSetRepository.Upsert").
				Int64("exercise_id", set.ExerciseID).
				Msg("failed to execute insert for exercise set")
			return models.ExerciseSet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
		}

		id, err := res.LastInsertId()
		if err != nil {
			return models.ExerciseSet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		set.ID = id
		return set, nil
	}

	_, err := ex.ExecContext(ctx, upsertExerciseSet,
		set.ID,
		set.ExerciseID,
		set.WeightKg,
		set.Reps,
		set.RPE,
		set.Notes,
	)
	if err != nil {
		log.Err(err).
			Str("func", "exerciseSetRepository.Upsert").
			Int64("set_id", set.ID).
			Msg("failed to execute upsert for exercise set")
		return models.ExerciseSet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return set, nil
}

func (r *exerciseSetRepository) Get(ctx context.Context, id int64) (models.ExerciseSet, error) {
	log := logger.FromContext(ctx)

	var set models.ExerciseSet
	row := r.DB.QueryRowContext(ctx, getExerciseSet, id)

	scanErr := row.Scan(
		&set.ID,
		&set.ExerciseID,
		&set.WeightKg,
		&set.Reps,
		&set.RPE,
		&set.Notes,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.ExerciseSet{}, fmt.Errorf("%w: exercise set %d", ErrNotFound, id)
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "exerciseSetRepository.Get").
			Int64("set_id", id).
			Msg("failed to scan exercise set row")
		return models.ExerciseSet{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return set, nil
}

func (r *exerciseSetRepository) ByExercise(ctx context.Context, exerciseID int64) ([]models.ExerciseSet, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getSetsByExercise, exerciseID)
	if err != nil {
		log.Err(err).
			Str("func", "exerciseSetRepository.ByExercise").
			Int64("exercise_id", exerciseID).
			Msg("failed to execute query for sets by exercise")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, classifySQLiteError(err))
	}
	defer rows.Close()

	var items []models.ExerciseSet

	for rows.Next() {
		var set models.ExerciseSet

		scanErr := rows.Scan(
			&set.ID,
			&set.ExerciseID,
			&set.WeightKg,
			&set.Reps,
			&set.RPE,
			&set.Notes,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "exerciseSetRepository.ByExercise").
				Int64("exercise_id", exerciseID).
				Msg("failed to scan exercise set row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, set)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "exerciseSetRepository.ByExercise").
			Int64("exercise_id", exerciseID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *exerciseSetRepository) Delete(ctx context.Context, ex execer, id int64) error {
	log := logger.FromContext(ctx)

	_, err := ex.ExecContext(ctx, deleteExerciseSet, id)
	if err != nil {
		log.Err(err).
			Str("func", "exerciseSetRepository.Delete").
			Int64("set_id", id).
			Msg("failed to execute delete for exercise set")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}

func (r *exerciseSetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercise_sets;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}
