// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Albert Shakirov

package models

// Workout is a single training day. Workouts are keyed by calendar date in
// ISO "YYYY-MM-DD" format; writing a workout for an existing date overwrites
// the previous record.
type Workout struct {
	// Date is the primary key, an ISO "YYYY-MM-DD" calendar date.
	Date string `json:"date" db:"workout_date"`

	// Title is the user-visible session name (e.g. "Leg Day").
	Title string `json:"title" db:"title"`

	// Notes is free-form text attached to the session.
	Notes string `json:"notes,omitempty" db:"notes"`

	// DurationMinutes is the planned or recorded session length.
	DurationMinutes int `json:"duration_minutes,omitempty" db:"duration_minutes"`

	// Completed marks the session as finished.
	Completed bool `json:"completed" db:"completed"`
}
