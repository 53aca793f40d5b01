// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Albert Shakirov

package models

import (
	"errors"
	"time"
)

// Collection identifies one of the four locally cached record groupings.
// The values double as the entity type tag on queued mutations.
type Collection string

const (
	CollectionWorkouts     Collection = "workouts"
	CollectionExercises    Collection = "exercises"
	CollectionExerciseSets Collection = "exercise_sets"
	CollectionWeightLogs   Collection = "weight_logs"
)

// Collections lists every known collection in a stable order. Used by
// diagnostics and the full-clear path.
func Collections() []Collection {
	return []Collection{
		CollectionWorkouts,
		CollectionExercises,
		CollectionExerciseSets,
		CollectionWeightLogs,
	}
}

// Operation is the mutation kind carried by a queue entry.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// ErrEmptyQueuePayload is returned by [QueuePayload.Validate] when no variant
// of the payload union is populated.
var ErrEmptyQueuePayload = errors.New("queue payload has no populated variant")

// QueuePayload is a tagged union over the four cached entity kinds. Exactly
// one pointer is non-nil for create/update entries; delete entries carry only
// the key of the removed record in the matching variant.
//
// Replay code dispatches on [QueueEntry.Entity] and reads the matching
// variant, so no runtime type inspection is needed.
type QueuePayload struct {
	Workout     *Workout     `json:"workout,omitempty"`
	Exercise    *Exercise    `json:"exercise,omitempty"`
	ExerciseSet *ExerciseSet `json:"exercise_set,omitempty"`
	WeightLog   *WeightLog   `json:"weight_log,omitempty"`
}

// Validate checks that the variant matching entity is populated.
func (p QueuePayload) Validate(entity Collection) error {
	switch entity {
	case CollectionWorkouts:
		if p.Workout == nil {
			return ErrEmptyQueuePayload
		}
	case CollectionExercises:
		if p.Exercise == nil {
			return ErrEmptyQueuePayload
		}
	case CollectionExerciseSets:
		if p.ExerciseSet == nil {
			return ErrEmptyQueuePayload
		}
	case CollectionWeightLogs:
		if p.WeightLog == nil {
			return ErrEmptyQueuePayload
		}
	default:
		return errors.New("unknown collection: " + string(entity))
	}
	return nil
}

// QueueEntry is one pending mutation awaiting replay to the remote authority.
// Entries are immutable once written and are removed only after a successful
// replay (or an explicit queue clear).
type QueueEntry struct {
	// ID is the auto-incrementing primary key assigned on enqueue.
	ID int64 `json:"id" db:"queue_id"`

	// Entity tags which collection the mutation belongs to.
	Entity Collection `json:"entity" db:"entity"`

	// Op is the mutation kind: create, update or delete.
	Op Operation `json:"op" db:"op"`

	// Payload is the record snapshot captured at enqueue time.
	Payload QueuePayload `json:"payload" db:"payload"`

	// QueuedAt is the enqueue timestamp; the queue is FIFO-ordered by it.
	QueuedAt time.Time `json:"queued_at" db:"queued_at"`
}
