// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Albert Shakirov

package models

// ExerciseSet is one performed set of an exercise.
type ExerciseSet struct {
	// ID is the numeric primary key.
	ID int64 `json:"id" db:"set_id"`

	// ExerciseID references the owning Exercise.
	ExerciseID int64 `json:"exercise_id" db:"exercise_id"`

	// WeightKg is the load used for the set.
	WeightKg float64 `json:"weight_kg" db:"weight_kg"`

	// Reps is the number of repetitions performed.
	Reps int `json:"reps" db:"reps"`

	// RPE is the rate of perceived exertion on the 1–10 scale;
	// zero means not recorded.
	RPE float64 `json:"rpe,omitempty" db:"rpe"`

	// Notes is free-form text attached to the set.
	Notes string `json:"notes,omitempty" db:"notes"`
}
