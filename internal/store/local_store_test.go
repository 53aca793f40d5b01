package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/models"
)

func newCacheStore(t *testing.T) *CacheStore {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// a second pool connection would see a fresh in-memory database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	require.NoError(t, db.Migrate())

	s, err := NewLocalStore(context.Background(), db, logger.Nop())
	require.NoError(t, err)

	return s
}

func TestSaveWorkoutOverwritesByDate(t *testing.T) {
	// Arrange
	s := newCacheStore(t)
	ctx := context.Background()

	first := models.Workout{Date: "2024-01-15", Title: "Leg Day", DurationMinutes: 60, Completed: true}
	second := first
	second.Title = "Leg Day (updated)"

	// Act
	require.NoError(t, s.SaveWorkout(ctx, first))

	got, err := s.Workout(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	require.NoError(t, s.SaveWorkout(ctx, second))

	got, err = s.Workout(ctx, "2024-01-15")
	require.NoError(t, err)

	// Assert: last write wins, still one record
	assert.Equal(t, "Leg Day (updated)", got.Title)

	all, err := s.RecentWorkouts(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// both puts left an "update" entry, in enqueue order
	entries, err := s.ListQueue(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, models.CollectionWorkouts, entry.Entity)
		assert.Equal(t, models.OpUpdate, entry.Op)
		require.NotNil(t, entry.Payload.Workout)
	}
	assert.Equal(t, "Leg Day", entries[0].Payload.Workout.Title)
	assert.Equal(t, "Leg Day (updated)", entries[1].Payload.Workout.Title)
}

func TestWorkoutNotFound(t *testing.T) {
	s := newCacheStore(t)

	_, err := s.Workout(context.Background(), "1999-12-31")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkoutsBetweenInclusiveAscending(t *testing.T) {
	// Arrange
	s := newCacheStore(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-20", "2024-01-10", "2024-01-15"} {
		require.NoError(t, s.SaveWorkout(ctx, models.Workout{Date: date, Title: "w " + date}))
	}

	// Act
	got, err := s.WorkoutsBetween(ctx, "2024-01-10", "2024-01-15")

	// Assert: both bounds included, ascending order
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-10", got[0].Date)
	assert.Equal(t, "2024-01-15", got[1].Date)

	t.Run("open range returns everything", func(t *testing.T) {
		all, err := s.WorkoutsBetween(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("empty range returns nothing", func(t *testing.T) {
		none, err := s.WorkoutsBetween(ctx, "2024-02-01", "2024-02-28")
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestRecentWorkoutsDescending(t *testing.T) {
	s := newCacheStore(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-10", "2024-01-20", "2024-01-15"} {
		require.NoError(t, s.SaveWorkout(ctx, models.Workout{Date: date}))
	}

	got, err := s.RecentWorkouts(ctx, 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-20", got[0].Date)
	assert.Equal(t, "2024-01-15", got[1].Date)

	t.Run("non-positive limit returns nothing", func(t *testing.T) {
		for _, limit := range []int{0, -1} {
			got, err := s.RecentWorkouts(ctx, limit)
			require.NoError(t, err)
			assert.Empty(t, got)
		}
	})
}

func TestSaveExerciseAssignsID(t *testing.T) {
	// Arrange
	s := newCacheStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveWorkout(ctx, models.Workout{Date: "2024-01-15", Title: "Leg Day"}))

	// Act
	squat, err := s.SaveExercise(ctx, models.Exercise{
		WorkoutDate: "2024-01-15",
		Slug:        "back-squat",
		Name:        "Back Squat",
		TargetSets:  5,
		TargetReps:  5,
	})
	require.NoError(t, err)

	press, err := s.SaveExercise(ctx, models.Exercise{
		WorkoutDate: "2024-01-15",
		Slug:        "leg-press",
		Name:        "Leg Press",
		TargetSets:  3,
		TargetReps:  10,
	})
	require.NoError(t, err)

	// Assert
	assert.Positive(t, squat.ID)
	assert.Positive(t, press.ID)
	assert.NotEqual(t, squat.ID, press.ID)

	got, err := s.Exercise(ctx, squat.ID)
	require.NoError(t, err)
	assert.Equal(t, squat, got)

	byWorkout, err := s.ExercisesByWorkout(ctx, "2024-01-15")
	require.NoError(t, err)
	require.Len(t, byWorkout, 2)
	assert.Equal(t, squat.ID, byWorkout[0].ID)
	assert.Equal(t, press.ID, byWorkout[1].ID)

	// the queued payload carries the assigned id
	entries, err := s.ListQueue(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.NotNil(t, entries[1].Payload.Exercise)
	assert.Equal(t, squat.ID, entries[1].Payload.Exercise.ID)
}

func TestSaveExerciseSetRoundTrip(t *testing.T) {
	s := newCacheStore(t)
	ctx := context.Background()

	exercise, err := s.SaveExercise(ctx, models.Exercise{WorkoutDate: "2024-01-15", Slug: "back-squat", Name: "Back Squat"})
	require.NoError(t, err)

	first, err := s.SaveExerciseSet(ctx, models.ExerciseSet{ExerciseID: exercise.ID, WeightKg: 100, Reps: 5, RPE: 8})
	require.NoError(t, err)
	second, err := s.SaveExerciseSet(ctx, models.ExerciseSet{ExerciseID: exercise.ID, WeightKg: 105, Reps: 3, RPE: 9})
	require.NoError(t, err)

	assert.Positive(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := s.ExerciseSet(ctx, second.ID)
	require.NoError(t, err)
	assert.InDelta(t, 105, got.WeightKg, 0.001)

	sets, err := s.SetsByExercise(ctx, exercise.ID)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, first.ID, sets[0].ID)

	t.Run("overwrite by id", func(t *testing.T) {
		first.Reps = 6
		updated, err := s.SaveExerciseSet(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, first.ID, updated.ID)

		got, err := s.ExerciseSet(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, 6, got.Reps)

		sets, err := s.SetsByExercise(ctx, exercise.ID)
		require.NoError(t, err)
		assert.Len(t, sets, 2)
	})
}

func TestDeleteWorkoutEnqueuesDelete(t *testing.T) {
	// Arrange
	s := newCacheStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveWorkout(ctx, models.Workout{Date: "2024-01-15", Title: "Leg Day"}))

	// Act
	require.NoError(t, s.DeleteWorkout(ctx, "2024-01-15"))

	// Assert
	_, err := s.Workout(ctx, "2024-01-15")
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err := s.ListQueue(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	deletion := entries[1]
	assert.Equal(t, models.CollectionWorkouts, deletion.Entity)
	assert.Equal(t, models.OpDelete, deletion.Op)
	require.NotNil(t, deletion.Payload.Workout)
	assert.Equal(t, "2024-01-15", deletion.Payload.Workout.Date)
	assert.Empty(t, deletion.Payload.Workout.Title)
}

func TestWeightLogRoundTrip(t *testing.T) {
	s := newCacheStore(t)
	ctx := context.Background()

	for _, entry := range []models.WeightLog{
		{MeasuredAt: "2024-01-10", WeightKg: 82.4},
		{MeasuredAt: "2024-01-12", WeightKg: 82.1, Note: "morning"},
		{MeasuredAt: "2024-01-14", WeightKg: 81.9},
	} {
		require.NoError(t, s.SaveWeightLog(ctx, entry))
	}

	got, err := s.WeightLog(ctx, "2024-01-12")
	require.NoError(t, err)
	assert.Equal(t, "morning", got.Note)

	recent, err := s.RecentWeightLogs(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2024-01-14", recent[0].MeasuredAt)

	between, err := s.WeightLogsBetween(ctx, "2024-01-10", "2024-01-12")
	require.NoError(t, err)
	assert.Len(t, between, 2)

	require.NoError(t, s.DeleteWeightLog(ctx, "2024-01-12"))
	_, err = s.WeightLog(ctx, "2024-01-12")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQueueFIFOAndRemoval(t *testing.T) {
	// Arrange: three writes across collections
	s := newCacheStore(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	require.NoError(t, s.SaveWorkout(ctx, models.Workout{Date: "2024-01-15"}))
	_, err := s.SaveExercise(ctx, models.Exercise{WorkoutDate: "2024-01-15", Slug: "back-squat", Name: "Back Squat"})
	require.NoError(t, err)
	require.NoError(t, s.SaveWeightLog(ctx, models.WeightLog{MeasuredAt: "2024-01-15", WeightKg: 82}))

	// Act
	entries, err := s.ListQueue(ctx)

	// Assert: enqueue order preserved
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, models.CollectionWorkouts, entries[0].Entity)
	assert.Equal(t, models.CollectionExercises, entries[1].Entity)
	assert.Equal(t, models.CollectionWeightLogs, entries[2].Entity)
	assert.True(t, entries[0].QueuedAt.Before(entries[1].QueuedAt))
	assert.True(t, entries[1].QueuedAt.Before(entries[2].QueuedAt))

	t.Run("remove replayed entry", func(t *testing.T) {
		require.NoError(t, s.RemoveQueueEntry(ctx, entries[0].ID))

		remaining, err := s.ListQueue(ctx)
		require.NoError(t, err)
		require.Len(t, remaining, 2)
		assert.Equal(t, entries[1].ID, remaining[0].ID)
	})

	t.Run("removing an absent id is a no-op", func(t *testing.T) {
		require.NoError(t, s.RemoveQueueEntry(ctx, 999))
	})

	t.Run("clear drops the rest", func(t *testing.T) {
		require.NoError(t, s.ClearQueue(ctx))

		remaining, err := s.ListQueue(ctx)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})
}

func TestListQueueOrdersByEnqueueTime(t *testing.T) {
	// Arrange: insertion order deliberately disagrees with the timestamps
	s := newCacheStore(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	for _, e := range []struct {
		date   string
		offset time.Duration
	}{
		{date: "2024-01-03", offset: 3 * time.Minute},
		{date: "2024-01-01", offset: 1 * time.Minute},
		{date: "2024-01-02", offset: 2 * time.Minute},
	} {
		_, err := s.EnqueueMutation(ctx, models.QueueEntry{
			Entity:   models.CollectionWorkouts,
			Op:       models.OpUpdate,
			Payload:  models.QueuePayload{Workout: &models.Workout{Date: e.date}},
			QueuedAt: base.Add(e.offset),
		})
		require.NoError(t, err)
	}

	// Act
	entries, err := s.ListQueue(ctx)

	// Assert: sorted by enqueue time, not by row insertion order
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-01-01", entries[0].Payload.Workout.Date)
	assert.Equal(t, "2024-01-02", entries[1].Payload.Workout.Date)
	assert.Equal(t, "2024-01-03", entries[2].Payload.Workout.Date)
	assert.True(t, entries[0].QueuedAt.Before(entries[1].QueuedAt))
	assert.True(t, entries[1].QueuedAt.Before(entries[2].QueuedAt))
}

func TestEnqueueMutationValidatesPayload(t *testing.T) {
	s := newCacheStore(t)

	_, err := s.EnqueueMutation(context.Background(), models.QueueEntry{
		Entity: models.CollectionWorkouts,
		Op:     models.OpUpdate,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrEmptyQueuePayload)
}

func TestLastSyncTimeRoundTrip(t *testing.T) {
	s := newCacheStore(t)
	ctx := context.Background()

	got, err := s.LastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "never-synced cache must report zero time")

	at := time.Date(2024, 1, 15, 12, 30, 0, 0, time.UTC)
	require.NoError(t, s.SetLastSyncTime(ctx, at))

	got, err = s.LastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, at.Equal(got))
}

func TestMetadataDeviceID(t *testing.T) {
	s := newCacheStore(t)
	ctx := context.Background()

	meta, err := s.Metadata(ctx)
	require.NoError(t, err)

	_, err = uuid.Parse(meta.DeviceID)
	require.NoError(t, err, "device id must be a valid UUID")
	assert.Equal(t, 1, meta.SchemaVersion)

	t.Run("stable across re-creation", func(t *testing.T) {
		again, err := NewLocalStore(ctx, s.db, logger.Nop())
		require.NoError(t, err)

		meta2, err := again.Metadata(ctx)
		require.NoError(t, err)
		assert.Equal(t, meta.DeviceID, meta2.DeviceID)
	})
}

func TestClearAll(t *testing.T) {
	// Arrange: seed every collection, the queue and the bookkeeping row
	s := newCacheStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveWorkout(ctx, models.Workout{Date: "2024-01-15", Title: "Leg Day"}))
	exercise, err := s.SaveExercise(ctx, models.Exercise{WorkoutDate: "2024-01-15", Slug: "back-squat", Name: "Back Squat"})
	require.NoError(t, err)
	_, err = s.SaveExerciseSet(ctx, models.ExerciseSet{ExerciseID: exercise.ID, WeightKg: 100, Reps: 5})
	require.NoError(t, err)
	require.NoError(t, s.SaveWeightLog(ctx, models.WeightLog{MeasuredAt: "2024-01-15", WeightKg: 82}))
	require.NoError(t, s.SetOwner(ctx, 42))
	require.NoError(t, s.SetLastSyncTime(ctx, time.Now()))

	deviceID, err := s.Metadata(ctx)
	require.NoError(t, err)

	// Act
	require.NoError(t, s.ClearAll(ctx))

	// Assert: empty cache, empty queue, reset bookkeeping
	summary, err := s.UsageSummary(ctx)
	require.NoError(t, err)
	for _, collection := range models.Collections() {
		assert.Zero(t, summary.Counts[collection], string(collection))
	}
	assert.Zero(t, summary.QueueDepth)

	meta, err := s.Metadata(ctx)
	require.NoError(t, err)
	assert.Zero(t, meta.UserID)
	assert.True(t, meta.LastSyncAt.IsZero())
	assert.Equal(t, deviceID.DeviceID, meta.DeviceID, "device id survives a clear")
	assert.Equal(t, deviceID.SchemaVersion, meta.SchemaVersion)
}

func TestUsageSummaryCounts(t *testing.T) {
	s := newCacheStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveWorkout(ctx, models.Workout{Date: "2024-01-14"}))
	require.NoError(t, s.SaveWorkout(ctx, models.Workout{Date: "2024-01-15"}))
	require.NoError(t, s.SaveWeightLog(ctx, models.WeightLog{MeasuredAt: "2024-01-15", WeightKg: 82}))

	summary, err := s.UsageSummary(ctx)

	require.NoError(t, err)
	assert.EqualValues(t, 2, summary.Counts[models.CollectionWorkouts])
	assert.EqualValues(t, 0, summary.Counts[models.CollectionExercises])
	assert.EqualValues(t, 1, summary.Counts[models.CollectionWeightLogs])
	assert.EqualValues(t, 3, summary.QueueDepth)
}

func TestDeleteAbsentRecordStillEnqueues(t *testing.T) {
	s := newCacheStore(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteWorkout(ctx, "2024-01-15"))

	entries, err := s.ListQueue(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.OpDelete, entries[0].Op)

	assert.False(t, entries[0].QueuedAt.IsZero())

	_, getErr := s.Workout(ctx, "2024-01-15")
	assert.ErrorIs(t, getErr, ErrNotFound)
}
