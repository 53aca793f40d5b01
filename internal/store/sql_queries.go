// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Albert Shakirov

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	upsertWorkout = `
		INSERT INTO workouts (
			workout_date,
			title,
			notes,
			duration_minutes,
			completed
		) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (workout_date) DO UPDATE SET
			title            = excluded.title,
			notes            = excluded.notes,
			duration_minutes = excluded.duration_minutes,
			completed        = excluded.completed;`

	getWorkout = `
		SELECT
			workout_date,
			title,
			notes,
			duration_minutes,
			completed
		FROM workouts
		WHERE workout_date = ?;`

	deleteWorkout = `
		DELETE FROM workouts
		WHERE workout_date = ?;`

	upsertExercise = `
		INSERT INTO exercises (
			exercise_id,
			workout_date,
			slug,
			name,
			target_sets,
			target_reps
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (exercise_id) DO UPDATE SET
			workout_date = excluded.workout_date,
			slug         = excluded.slug,
			name         = excluded.name,
			target_sets  = excluded.target_sets,
			target_reps  = excluded.target_reps;`

	insertExercise = `
		INSERT INTO exercises (
			workout_date,
			slug,
			name,
			target_sets,
			target_reps
		) VALUES (?, ?, ?, ?, ?);`

	getExercise = `
		SELECT
			exercise_id,
			workout_date,
			slug,
			name,
			target_sets,
			target_reps
		FROM exercises
		WHERE exercise_id = ?;`

	getExercisesByWorkout = `
		SELECT
			exercise_id,
			workout_date,
			slug,
			name,
			target_sets,
			target_reps
		FROM exercises
		WHERE workout_date = ?
		ORDER BY exercise_id;`

	deleteExercise = `
		DELETE FROM exercises
		WHERE exercise_id = ?;`

	upsertExerciseSet = `
		INSERT INTO exercise_sets (
			set_id,
			exercise_id,
			weight_kg,
			reps,
			rpe,
			notes
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (set_id) DO UPDATE SET
			exercise_id = excluded.exercise_id,
			weight_kg   = excluded.weight_kg,
			reps        = excluded.reps,
			rpe         = excluded.rpe,
			notes       = excluded.notes;`

	insertExerciseSet = `
		INSERT INTO exercise_sets (
			exercise_id,
			weight_kg,
			reps,
			rpe,
			notes
		) VALUES (?, ?, ?, ?, ?);`

	getExerciseSet = `
		SELECT
			set_id,
			exercise_id,
			weight_kg,
			reps,
			rpe,
			notes
		FROM exercise_sets
		WHERE set_id = ?;`

	getSetsByExercise = `
		SELECT
			set_id,
			exercise_id,
			weight_kg,
			reps,
			rpe,
			notes
		FROM exercise_sets
		WHERE exercise_id = ?
		ORDER BY set_id;`

	deleteExerciseSet = `
		DELETE FROM exercise_sets
		WHERE set_id = ?;`

	upsertWeightLog = `
		INSERT INTO weight_logs (
			measured_at,
			weight_kg,
			note
		) VALUES (?, ?, ?)
		ON CONFLICT (measured_at) DO UPDATE SET
			weight_kg = excluded.weight_kg,
			note      = excluded.note;`

	getWeightLog = `
		SELECT
			measured_at,
			weight_kg,
			note
		FROM weight_logs
		WHERE measured_at = ?;`

	deleteWeightLog = `
		DELETE FROM weight_logs
		WHERE measured_at = ?;`

	insertQueueEntry = `
		INSERT INTO sync_queue (
			entity,
			op,
			payload,
			queued_at
		) VALUES (?, ?, ?, ?);`

	listQueueEntries = `
		SELECT
			queue_id,
			entity,
			op,
			payload,
			queued_at
		FROM sync_queue
		ORDER BY queued_at, queue_id;`

	removeQueueEntry = `
		DELETE FROM sync_queue
		WHERE queue_id = ?;`

	clearQueueEntries = `
		DELETE FROM sync_queue;`

	countQueueEntries = `
		SELECT COUNT(*) FROM sync_queue;`

	getSyncMetadata = `
		SELECT
			last_sync_at,
			user_id,
			device_id,
			schema_version
		FROM sync_metadata
		WHERE meta_id = 1;`

	setLastSyncAt = `
		UPDATE sync_metadata
		SET last_sync_at = ?
		WHERE meta_id = 1;`

	setOwnerUserID = `
		UPDATE sync_metadata
		SET user_id = ?
		WHERE meta_id = 1;`

	setDeviceID = `
		UPDATE sync_metadata
		SET device_id = ?
		WHERE meta_id = 1
		  AND device_id = '';`

	resetSyncMetadata = `
		UPDATE sync_metadata
		SET last_sync_at = NULL,
		    user_id      = 0
		WHERE meta_id = 1;`
)

var workoutColumns = []string{"workout_date", "title", "notes", "duration_minutes", "completed"}

var weightLogColumns = []string{"measured_at", "weight_kg", "note"}

// buildDateRangeQuery builds an ascending, inclusive date-range scan over
// table. Either bound may be empty for an open-ended range.
func buildDateRangeQuery(table, dateColumn string, columns []string, from, to string) (string, []any, error) {
	b := sq.Select(columns...).
		From(table).
		OrderBy(dateColumn + " ASC")

	if from != "" {
		b = b.Where(sq.GtOrEq{dateColumn: from})
	}
	if to != "" {
		b = b.Where(sq.LtOrEq{dateColumn: to})
	}

	return b.ToSql()
}

// buildRecentQuery builds a descending scan over table's date index that
// stops after limit rows, so "most recent N" reads never traverse the full
// collection.
func buildRecentQuery(table, dateColumn string, columns []string, limit int) (string, []any, error) {
	return sq.Select(columns...).
		From(table).
		OrderBy(dateColumn + " DESC").
		Limit(uint64(limit)).
		ToSql()
}
