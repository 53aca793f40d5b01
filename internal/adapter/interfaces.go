// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Albert Shakirov

// Package adapter provides transport-layer abstractions for communicating with
// the remote fitness data service.
//
// The primary abstraction is [RemoteService], which decouples the replay layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteService]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/ashakirov/go-fit-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_service_mock.go -package=mock

// RemoteService defines transport-agnostic communication with the remote
// fitness data service. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type RemoteService interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or an empty string.
	Token() string

	// UpsertWorkout pushes a workout create/update to the remote service.
	UpsertWorkout(ctx context.Context, workout models.Workout) error

	// DeleteWorkout removes the workout for the given date remotely.
	DeleteWorkout(ctx context.Context, date string) error

	// UpsertExercise pushes an exercise create/update to the remote service.
	UpsertExercise(ctx context.Context, exercise models.Exercise) error

	// DeleteExercise removes the exercise with the given id remotely.
	DeleteExercise(ctx context.Context, id int64) error

	// UpsertExerciseSet pushes a set create/update to the remote service.
	UpsertExerciseSet(ctx context.Context, set models.ExerciseSet) error

	// DeleteExerciseSet removes the set with the given id remotely.
	DeleteExerciseSet(ctx context.Context, id int64) error

	// UpsertWeightLog pushes a weight log create/update to the remote service.
	UpsertWeightLog(ctx context.Context, entry models.WeightLog) error

	// DeleteWeightLog removes the weight log for the given date remotely.
	DeleteWeightLog(ctx context.Context, date string) error
}
