// Package service contains the client-side replay logic: draining the pending
// mutation queue against the remote fitness data service and the background
// job that triggers it periodically.
package service

import (
	"context"
	"time"

	"github.com/ashakirov/go-fit-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LocalQueue is the slice of the local store the replay service needs: the
// pending queue plus the sync bookkeeping.
type LocalQueue interface {
	ListQueue(ctx context.Context) ([]models.QueueEntry, error)
	RemoveQueueEntry(ctx context.Context, id int64) error
	SetLastSyncTime(ctx context.Context, at time.Time) error
}

// ReplayService drains the pending mutation queue against the remote service.
type ReplayService interface {
	// Replay pushes pending mutations to the remote service in FIFO order,
	// removing each entry after a successful push. It halts on the first
	// failure, leaving that entry and everything behind it queued for the next
	// run. Returns the number of entries replayed.
	Replay(ctx context.Context) (int, error)
}

// ReplayJob runs Replay on a fixed interval in the background.
type ReplayJob interface {
	// Start launches the background replay loop. A previously running loop is
	// stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background loop and waits for it to exit. Safe to call
	// when the job is not running.
	Stop()
}
