package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/models"
)

// exerciseRepository executes exercise CRUD operations against the
// "exercises" table.
type exerciseRepository struct {
	*DB
	logger *logger.Logger
}

func newExerciseRepository(db *DB, logger *logger.Logger) *exerciseRepository {
	return &exerciseRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert writes exercise by primary key. When exercise.ID is zero a fresh id
// is assigned by the engine and returned in the result; otherwise the row
// under that id is inserted or overwritten.
func (r *exerciseRepository) Upsert(ctx context.Context, ex execer, exercise models.Exercise) (models.Exercise, error) {
	log := logger.FromContext(ctx)

	if exercise.ID == 0 {
		res, err := ex.ExecContext(ctx, insertExercise,
			exercise.WorkoutDate,
			exercise.Slug,
			exercise.Name,
			exercise.TargetSets,
			exercise.TargetReps,
		)
		if err != nil {
			log.Err(err).
				Str("func", "exerciseRepository.Upsert").
				Str("workout_date", exercise.WorkoutDate).
				Msg("failed to execute insert for exercise")
			return models.Exercise{}, fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
		}

		id, err := res.LastInsertId()
		if err != nil {
			return models.Exercise{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		exercise.ID = id
		return exercise, nil
	}

	_, err := ex.ExecContext(ctx, upsertExercise,
		exercise.ID,
		exercise.WorkoutDate,
		exercise.Slug,
		exercise.Name,
		exercise.TargetSets,
		exercise.TargetReps,
	)
	if err != nil {
		log.Err(err).
			Str("func", "exerciseRepository.Upsert").
			Int64("exercise_id", exercise.ID).
			Msg("failed to execute upsert for exercise")
		return models.Exercise{}, fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return exercise, nil
}

func (r *exerciseRepository) Get(ctx context.Context, id int64) (models.Exercise, error) {
	log := logger.FromContext(ctx)

	var exercise models.Exercise
	row := r.DB.QueryRowContext(ctx, getExercise, id)

	scanErr := row.Scan(
		&exercise.ID,
		&exercise.WorkoutDate,
		&exercise.Slug,
		&exercise.Name,
		&exercise.TargetSets,
		&exercise.TargetReps,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Exercise{}, fmt.Errorf("%w: exercise %d", ErrNotFound, id)
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "exerciseRepository.Get").
			Int64("exercise_id", id).
			Msg("failed to scan exercise row")
		return models.Exercise{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return exercise, nil
}

// ByWorkout returns every exercise referencing the workout date, ordered by
// id. A dangling reference (the workout itself was deleted) still lists; the
// remote authority reconciles eventually.
func (r *exerciseRepository) ByWorkout(ctx context.Context, workoutDate string) ([]models.Exercise, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getExercisesByWorkout, workoutDate)
	if err != nil {
		log.Err(err).
			Str("func", "exerciseRepository.ByWorkout").
			Str("workout_date", workoutDate).
			Msg("failed to execute query for exercises by workout")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, classifySQLiteError(err))
	}
	defer rows.Close()

	var items []models.Exercise

	for rows.Next() {
		var exercise models.Exercise

		scanErr := rows.Scan(
			&exercise.ID,
			&exercise.WorkoutDate,
			&exercise.Slug,
			&exercise.Name,
			&exercise.TargetSets,
			&exercise.TargetReps,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "exerciseRepository.ByWorkout").
				Str("workout_date", workoutDate).
				Msg("failed to scan exercise row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, exercise)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "exerciseRepository.ByWorkout").
			Str("workout_date", workoutDate).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *exerciseRepository) Delete(ctx context.Context, ex execer, id int64) error {
	log := logger.FromContext(ctx)

	_, err := ex.ExecContext(ctx, deleteExercise, id)
	if err != nil {
		log.Err(err).
			Str("func", "exerciseRepository.Delete").
			Int64("exercise_id", id).
			Msg("failed to execute delete for exercise")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}

func (r *exerciseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}
