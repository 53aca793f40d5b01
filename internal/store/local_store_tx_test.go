package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/models"
)

func newMockedStore(t *testing.T) (*CacheStore, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	log := logger.Nop()

	s := &CacheStore{
		db:        db,
		logger:    log,
		workouts:  newWorkoutRepository(db, log),
		exercises: newExerciseRepository(db, log),
		sets:      newExerciseSetRepository(db, log),
		weights:   newWeightLogRepository(db, log),
		queue:     newQueueRepository(db, log),
		meta:      newMetaRepository(db, log),
		now:       func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) },
	}

	return s, mock
}

func TestSaveWorkoutCommitsWriteAndQueueEntryTogether(t *testing.T) {
	// Arrange
	s, mock := newMockedStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO workouts").
		WithArgs("2024-01-15", "Leg Day", "", 60, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sync_queue").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// Act
	err := s.SaveWorkout(context.Background(), models.Workout{
		Date:            "2024-01-15",
		Title:           "Leg Day",
		DurationMinutes: 60,
		Completed:       true,
	})

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveWorkoutRollsBackWhenEnqueueFails(t *testing.T) {
	// Arrange
	s, mock := newMockedStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO workouts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sync_queue").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	// Act
	err := s.SaveWorkout(context.Background(), models.Workout{Date: "2024-01-15"})

	// Assert: the collection write must not outlive the failed enqueue
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExerciseRollsBackWhenEnqueueFails(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM exercises").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sync_queue").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := s.DeleteExercise(context.Background(), 7)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveWorkoutReportsQuotaExhaustion(t *testing.T) {
	// Arrange: the engine rejects the write because the volume is full
	s, mock := newMockedStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO workouts").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrFull})
	mock.ExpectRollback()

	// Act
	err := s.SaveWorkout(context.Background(), models.Workout{Date: "2024-01-15"})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutGetMapsNoRowsToNotFound(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectQuery("SELECT").
		WithArgs("2024-01-15").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Workout(context.Background(), "2024-01-15")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBeginFailureIsClassified(t *testing.T) {
	s, mock := newMockedStore(t)

	mock.ExpectBegin().WillReturnError(sqlite3.Error{Code: sqlite3.ErrCantOpen})

	err := s.SaveWorkout(context.Background(), models.Workout{Date: "2024-01-15"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
