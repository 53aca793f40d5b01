package store

import (
	"context"
	"time"

	"github.com/ashakirov/go-fit-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/local_store_mock.go -package=mock

// LocalStore is the offline cache facade: typed reads and writes over the four
// cached collections, the pending-mutation queue and the sync bookkeeping row.
//
// Every write that changes cached data also appends the matching queue entry
// in the same transaction, so a crash can never leave a cached change without
// its pending mutation (or the reverse).
type LocalStore interface {
	SaveWorkout(ctx context.Context, workout models.Workout) error
	Workout(ctx context.Context, date string) (models.Workout, error)
	WorkoutsBetween(ctx context.Context, from, to string) ([]models.Workout, error)
	RecentWorkouts(ctx context.Context, limit int) ([]models.Workout, error)
	DeleteWorkout(ctx context.Context, date string) error

	SaveExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error)
	Exercise(ctx context.Context, id int64) (models.Exercise, error)
	ExercisesByWorkout(ctx context.Context, workoutDate string) ([]models.Exercise, error)
	DeleteExercise(ctx context.Context, id int64) error

	SaveExerciseSet(ctx context.Context, set models.ExerciseSet) (models.ExerciseSet, error)
	ExerciseSet(ctx context.Context, id int64) (models.ExerciseSet, error)
	SetsByExercise(ctx context.Context, exerciseID int64) ([]models.ExerciseSet, error)
	DeleteExerciseSet(ctx context.Context, id int64) error

	SaveWeightLog(ctx context.Context, entry models.WeightLog) error
	WeightLog(ctx context.Context, date string) (models.WeightLog, error)
	WeightLogsBetween(ctx context.Context, from, to string) ([]models.WeightLog, error)
	RecentWeightLogs(ctx context.Context, limit int) ([]models.WeightLog, error)
	DeleteWeightLog(ctx context.Context, date string) error

	EnqueueMutation(ctx context.Context, entry models.QueueEntry) (int64, error)
	ListQueue(ctx context.Context) ([]models.QueueEntry, error)
	RemoveQueueEntry(ctx context.Context, id int64) error
	ClearQueue(ctx context.Context) error

	LastSyncTime(ctx context.Context) (time.Time, error)
	SetLastSyncTime(ctx context.Context, at time.Time) error
	Metadata(ctx context.Context) (models.SyncMetadata, error)
	SetOwner(ctx context.Context, userID int64) error

	ClearAll(ctx context.Context) error
	UsageSummary(ctx context.Context) (models.UsageSummary, error)
}
