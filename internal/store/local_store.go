// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Albert Shakirov

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/models"
)

// CacheStore is the SQLite-backed implementation of [LocalStore]. All
// collection writes and their queue entries are committed in one transaction.
type CacheStore struct {
	db     *DB
	logger *logger.Logger

	workouts  *workoutRepository
	exercises *exerciseRepository
	sets      *exerciseSetRepository
	weights   *weightLogRepository
	queue     *queueRepository
	meta      *metaRepository

	// now is swapped in tests to pin enqueue timestamps.
	now func() time.Time
}

// NewLocalStore wires the repositories over an opened cache database and
// makes sure the device id is persisted.
func NewLocalStore(ctx context.Context, db *DB, logger *logger.Logger) (*CacheStore, error) {
	logger.Info().Msg("creating local cache store...")

	s := &CacheStore{
		db:        db,
		logger:    logger,
		workouts:  newWorkoutRepository(db, logger),
		exercises: newExerciseRepository(db, logger),
		sets:      newExerciseSetRepository(db, logger),
		weights:   newWeightLogRepository(db, logger),
		queue:     newQueueRepository(db, logger),
		meta:      newMetaRepository(db, logger),
		now:       time.Now,
	}

	if _, err := s.meta.EnsureDevice(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// inTx runs fn inside a transaction, rolling back on error.
func (s *CacheStore) inTx(ctx context.Context, fn func(tx execer) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, classifySQLiteError(err))
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, classifySQLiteError(err))
	}

	return nil
}

func (s *CacheStore) enqueue(ctx context.Context, tx execer, entity models.Collection, op models.Operation, payload models.QueuePayload) error {
	_, err := s.queue.Insert(ctx, tx, models.QueueEntry{
		Entity:   entity,
		Op:       op,
		Payload:  payload,
		QueuedAt: s.now(),
	})
	return err
}

// SaveWorkout overwrites the workout under its date and records the pending
// "update" mutation atomically.
func (s *CacheStore) SaveWorkout(ctx context.Context, workout models.Workout) error {
	return s.inTx(ctx, func(tx execer) error {
		if err := s.workouts.Upsert(ctx, tx, workout); err != nil {
			return err
		}
		return s.enqueue(ctx, tx, models.CollectionWorkouts, models.OpUpdate,
			models.QueuePayload{Workout: &workout})
	})
}

func (s *CacheStore) Workout(ctx context.Context, date string) (models.Workout, error) {
	return s.workouts.Get(ctx, date)
}

func (s *CacheStore) WorkoutsBetween(ctx context.Context, from, to string) ([]models.Workout, error) {
	return s.workouts.Between(ctx, from, to)
}

func (s *CacheStore) RecentWorkouts(ctx context.Context, limit int) ([]models.Workout, error) {
	return s.workouts.Recent(ctx, limit)
}

// DeleteWorkout removes the cached workout and records the pending "delete"
// mutation. The delete payload carries only the record key. Deleting a date
// that was never cached still enqueues the mutation; the remote may hold a
// record this device never saw.
func (s *CacheStore) DeleteWorkout(ctx context.Context, date string) error {
	return s.inTx(ctx, func(tx execer) error {
		if err := s.workouts.Delete(ctx, tx, date); err != nil {
			return err
		}
		return s.enqueue(ctx, tx, models.CollectionWorkouts, models.OpDelete,
			models.QueuePayload{Workout: &models.Workout{Date: date}})
	})
}

// SaveExercise overwrites the exercise and records the pending mutation. A
// zero id gets a locally assigned one, returned in the result so the caller
// and the queued payload agree on the key.
func (s *CacheStore) SaveExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
	var saved models.Exercise
	err := s.inTx(ctx, func(tx execer) error {
		var err error
		saved, err = s.exercises.Upsert(ctx, tx, exercise)
		if err != nil {
			return err
		}
		return s.enqueue(ctx, tx, models.CollectionExercises, models.OpUpdate,
			models.QueuePayload{Exercise: &saved})
	})
	if err != nil {
		return models.Exercise{}, err
	}
	return saved, nil
}

func (s *CacheStore) Exercise(ctx context.Context, id int64) (models.Exercise, error) {
	return s.exercises.Get(ctx, id)
}

func (s *CacheStore) ExercisesByWorkout(ctx context.Context, workoutDate string) ([]models.Exercise, error) {
	return s.exercises.ByWorkout(ctx, workoutDate)
}

func (s *CacheStore) DeleteExercise(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx execer) error {
		if err := s.exercises.Delete(ctx, tx, id); err != nil {
			return err
		}
		return s.enqueue(ctx, tx, models.CollectionExercises, models.OpDelete,
			models.QueuePayload{Exercise: &models.Exercise{ID: id}})
	})
}

func (s *CacheStore) SaveExerciseSet(ctx context.Context, set models.ExerciseSet) (models.ExerciseSet, error) {
	var saved models.ExerciseSet
	err := s.inTx(ctx, func(tx execer) error {
		var err error
		saved, err = s.sets.Upsert(ctx, tx, set)
		if err != nil {
			return err
		}
		return s.enqueue(ctx, tx, models.CollectionExerciseSets, models.OpUpdate,
			models.QueuePayload{ExerciseSet: &saved})
	})
	if err != nil {
		return models.ExerciseSet{}, err
	}
	return saved, nil
}

func (s *CacheStore) ExerciseSet(ctx context.Context, id int64) (models.ExerciseSet, error) {
	return s.sets.Get(ctx, id)
}

func (s *CacheStore) SetsByExercise(ctx context.Context, exerciseID int64) ([]models.ExerciseSet, error) {
	return s.sets.ByExercise(ctx, exerciseID)
}

func (s *CacheStore) DeleteExerciseSet(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx execer) error {
		if err := s.sets.Delete(ctx, tx, id); err != nil {
			return err
		}
		return s.enqueue(ctx, tx, models.CollectionExerciseSets, models.OpDelete,
			models.QueuePayload{ExerciseSet: &models.ExerciseSet{ID: id}})
	})
}

func (s *CacheStore) SaveWeightLog(ctx context.Context, entry models.WeightLog) error {
	return s.inTx(ctx, func(tx execer) error {
		if err := s.weights.Upsert(ctx, tx, entry); err != nil {
			return err
		}
		return s.enqueue(ctx, tx, models.CollectionWeightLogs, models.OpUpdate,
			models.QueuePayload{WeightLog: &entry})
	})
}

func (s *CacheStore) WeightLog(ctx context.Context, date string) (models.WeightLog, error) {
	return s.weights.Get(ctx, date)
}

func (s *CacheStore) WeightLogsBetween(ctx context.Context, from, to string) ([]models.WeightLog, error) {
	return s.weights.Between(ctx, from, to)
}

func (s *CacheStore) RecentWeightLogs(ctx context.Context, limit int) ([]models.WeightLog, error) {
	return s.weights.Recent(ctx, limit)
}

func (s *CacheStore) DeleteWeightLog(ctx context.Context, date string) error {
	return s.inTx(ctx, func(tx execer) error {
		if err := s.weights.Delete(ctx, tx, date); err != nil {
			return err
		}
		return s.enqueue(ctx, tx, models.CollectionWeightLogs, models.OpDelete,
			models.QueuePayload{WeightLog: &models.WeightLog{MeasuredAt: date}})
	})
}

// EnqueueMutation appends a caller-built entry to the queue outside any
// collection write. The entry's QueuedAt is stamped here when zero.
func (s *CacheStore) EnqueueMutation(ctx context.Context, entry models.QueueEntry) (int64, error) {
	if entry.QueuedAt.IsZero() {
		entry.QueuedAt = s.now()
	}
	return s.queue.Insert(ctx, s.db, entry)
}

func (s *CacheStore) ListQueue(ctx context.Context) ([]models.QueueEntry, error) {
	return s.queue.List(ctx)
}

func (s *CacheStore) RemoveQueueEntry(ctx context.Context, id int64) error {
	return s.queue.Remove(ctx, s.db, id)
}

func (s *CacheStore) ClearQueue(ctx context.Context) error {
	return s.queue.Clear(ctx, s.db)
}

// LastSyncTime returns the time of the last fully drained replay, zero when
// the cache has never synced.
func (s *CacheStore) LastSyncTime(ctx context.Context) (time.Time, error) {
	meta, err := s.meta.Get(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return meta.LastSyncAt, nil
}

func (s *CacheStore) SetLastSyncTime(ctx context.Context, at time.Time) error {
	return s.meta.SetLastSync(ctx, s.db, at)
}

func (s *CacheStore) Metadata(ctx context.Context) (models.SyncMetadata, error) {
	return s.meta.Get(ctx)
}

func (s *CacheStore) SetOwner(ctx context.Context, userID int64) error {
	return s.meta.SetOwner(ctx, s.db, userID)
}

// ClearAll wipes every cached collection, drops the pending queue and resets
// the sync bookkeeping in one transaction. Device id and schema version
// survive; the cache stays usable for the next signed-in user.
func (s *CacheStore) ClearAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	err := s.inTx(ctx, func(tx execer) error {
		for _, stmt := range []string{
			`DELETE FROM exercise_sets;`,
			`DELETE FROM exercises;`,
			`DELETE FROM workouts;`,
			`DELETE FROM weight_logs;`,
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
			}
		}
		if err := s.queue.Clear(ctx, tx); err != nil {
			return err
		}
		return s.meta.Reset(ctx, tx)
	})
	if err != nil {
		log.Err(err).Str("func", "CacheStore.ClearAll").Msg("failed to clear local cache")
		return err
	}

	log.Info().Str("func", "CacheStore.ClearAll").Msg("local cache cleared")
	return nil
}

// UsageSummary reports per-collection record counts and the pending queue
// depth. Counts are read outside a transaction; under concurrent writes the
// figures are best-effort.
func (s *CacheStore) UsageSummary(ctx context.Context) (models.UsageSummary, error) {
	summary := models.UsageSummary{
		Counts: make(map[models.Collection]int64, len(models.Collections())),
	}

	counters := map[models.Collection]func(context.Context) (int64, error){
		models.CollectionWorkouts:     s.workouts.Count,
		models.CollectionExercises:    s.exercises.Count,
		models.CollectionExerciseSets: s.sets.Count,
		models.CollectionWeightLogs:   s.weights.Count,
	}

	for _, collection := range models.Collections() {
		count, err := counters[collection](ctx)
		if err != nil {
			return models.UsageSummary{}, err
		}
		summary.Counts[collection] = count
	}

	depth, err := s.queue.Depth(ctx)
	if err != nil {
		return models.UsageSummary{}, err
	}
	summary.QueueDepth = depth

	return summary, nil
}
