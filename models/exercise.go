// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Albert Shakirov

package models

// Exercise is one movement scheduled inside a workout. It references its
// parent workout by date; the reference is advisory — deleting a workout does
// not cascade to its exercises, the remote authority reconciles eventually.
type Exercise struct {
	// ID is the numeric primary key.
	ID int64 `json:"id" db:"exercise_id"`

	// WorkoutDate references the owning Workout by its date key.
	WorkoutDate string `json:"workout_date" db:"workout_date"`

	// Slug is the canonical machine name of the movement
	// (e.g. "barbell-back-squat").
	Slug string `json:"slug" db:"slug"`

	// Name is the user-visible movement name.
	Name string `json:"name" db:"name"`

	// TargetSets and TargetReps describe the planned volume.
	TargetSets int `json:"target_sets" db:"target_sets"`
	TargetReps int `json:"target_reps" db:"target_reps"`
}
