// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Albert Shakirov

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ashakirov/go-fit-keeper/internal/adapter"
	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/models"
)

type replayService struct {
	queue  LocalQueue
	remote adapter.RemoteService
	logger *logger.Logger

	now func() time.Time
}

// NewReplayService builds the queue drainer over the local queue slice and the
// remote transport.
func NewReplayService(queue LocalQueue, remote adapter.RemoteService, logger *logger.Logger) ReplayService {
	return &replayService{
		queue:  queue,
		remote: remote,
		logger: logger,
		now:    time.Now,
	}
}

// Replay implements [ReplayService]. Entries are pushed strictly in enqueue
// order; an update must never reach the remote before the create it depends
// on, so the first failure halts the run. Create-then-delete pairs queued
// while offline are replayed as-is, both operations in order, rather than
// collapsed locally.
func (s *replayService) Replay(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	entries, err := s.queue.ListQueue(ctx)
	if err != nil {
		return 0, fmt.Errorf("list queue: %w", err)
	}
	if len(entries) == 0 {
		return 0, nil
	}

	log.Debug().
		Str("func", "replayService.Replay").
		Int("pending", len(entries)).
		Msg("starting queue replay")

	replayed := 0
	for _, entry := range entries {
		if err := s.push(ctx, entry); err != nil {
			log.Warn().
				Err(err).
				Str("func", "replayService.Replay").
				Int64("queue_id", entry.ID).
				Str("entity", string(entry.Entity)).
				Str("op", string(entry.Op)).
				Msg("replay halted, entry stays queued")
			return replayed, fmt.Errorf("replay entry %d (%s %s): %w", entry.ID, entry.Entity, entry.Op, err)
		}

		if err := s.queue.RemoveQueueEntry(ctx, entry.ID); err != nil {
			return replayed, fmt.Errorf("remove replayed entry %d: %w", entry.ID, err)
		}
		replayed++
	}

	if err := s.queue.SetLastSyncTime(ctx, s.now()); err != nil {
		return replayed, fmt.Errorf("record sync time: %w", err)
	}

	log.Info().
		Str("func", "replayService.Replay").
		Int("replayed", replayed).
		Msg("queue fully drained")

	return replayed, nil
}

func (s *replayService) push(ctx context.Context, entry models.QueueEntry) error {
	if err := entry.Payload.Validate(entry.Entity); err != nil {
		return err
	}
	if entry.Op != models.OpCreate && entry.Op != models.OpUpdate && entry.Op != models.OpDelete {
		return fmt.Errorf("%w: %q", ErrUnknownQueueOperation, entry.Op)
	}

	deletion := entry.Op == models.OpDelete

	switch entry.Entity {
	case models.CollectionWorkouts:
		if deletion {
			return s.remote.DeleteWorkout(ctx, entry.Payload.Workout.Date)
		}
		return s.remote.UpsertWorkout(ctx, *entry.Payload.Workout)

	case models.CollectionExercises:
		if deletion {
			return s.remote.DeleteExercise(ctx, entry.Payload.Exercise.ID)
		}
		return s.remote.UpsertExercise(ctx, *entry.Payload.Exercise)

	case models.CollectionExerciseSets:
		if deletion {
			return s.remote.DeleteExerciseSet(ctx, entry.Payload.ExerciseSet.ID)
		}
		return s.remote.UpsertExerciseSet(ctx, *entry.Payload.ExerciseSet)

	case models.CollectionWeightLogs:
		if deletion {
			return s.remote.DeleteWeightLog(ctx, entry.Payload.WeightLog.MeasuredAt)
		}
		return s.remote.UpsertWeightLog(ctx, *entry.Payload.WeightLog)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownQueueEntity, entry.Entity)
	}
}
