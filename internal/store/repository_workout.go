package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/models"
)

// workoutRepository executes all workout CRUD operations against the
// "workouts" table. Write methods accept an [execer] so the local store
// facade can run them inside the put+enqueue transaction.
type workoutRepository struct {
	*DB
	logger *logger.Logger
}

func newWorkoutRepository(db *DB, logger *logger.Logger) *workoutRepository {
	return &workoutRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *workoutRepository) Upsert(ctx context.Context, ex execer, workout models.Workout) error {
	log := logger.FromContext(ctx)

	_, err := ex.ExecContext(ctx, upsertWorkout,
		workout.Date,
		workout.Title,
		workout.Notes,
		workout.DurationMinutes,
		workout.Completed,
	)
	if err != nil {
		log.Err(err).
			Str("func", "workoutRepository.Upsert").
			Str("workout_date", workout.Date).
			Msg("failed to execute upsert for workout")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}

func (r *workoutRepository) Get(ctx context.Context, date string) (models.Workout, error) {
	log := logger.FromContext(ctx)

	var workout models.Workout
	row := r.DB.QueryRowContext(ctx, getWorkout, date)

	scanErr := row.Scan(
		&workout.Date,
		&workout.Title,
		&workout.Notes,
		&workout.DurationMinutes,
		&workout.Completed,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Workout{}, fmt.Errorf("%w: workout %s", ErrNotFound, date)
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "workoutRepository.Get").
			Str("workout_date", date).
			Msg("failed to scan workout row")
		return models.Workout{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return workout, nil
}

// Between returns workouts whose date falls within [from, to] inclusive, in
// ascending date order. Either bound may be empty for an open-ended range.
func (r *workoutRepository) Between(ctx context.Context, from, to string) ([]models.Workout, error) {
	query, args, err := buildDateRangeQuery("workouts", "workout_date", workoutColumns, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "workoutRepository.Between", query, args...)
}

// Recent returns at most limit workouts in descending date order. A
// non-positive limit returns nothing.
func (r *workoutRepository) Recent(ctx context.Context, limit int) ([]models.Workout, error) {
	if limit <= 0 {
		return nil, nil
	}
	query, args, err := buildRecentQuery("workouts", "workout_date", workoutColumns, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "workoutRepository.Recent", query, args...)
}

func (r *workoutRepository) list(ctx context.Context, caller, query string, args ...any) ([]models.Workout, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute workout list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, classifySQLiteError(err))
	}
	defer rows.Close()

	var items []models.Workout

	for rows.Next() {
		var workout models.Workout

		scanErr := rows.Scan(
			&workout.Date,
			&workout.Title,
			&workout.Notes,
			&workout.DurationMinutes,
			&workout.Completed,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan workout row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, workout)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *workoutRepository) Delete(ctx context.Context, ex execer, date string) error {
	log := logger.FromContext(ctx)

	_, err := ex.ExecContext(ctx, deleteWorkout, date)
	if err != nil {
		log.Err(err).
			Str("func", "workoutRepository.Delete").
			Str("workout_date", date).
			Msg("failed to execute delete for workout")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}

func (r *workoutRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM workouts;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}
