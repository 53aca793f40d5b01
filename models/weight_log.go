// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Albert Shakirov

package models

// WeightLog is a single body-weight measurement, keyed by the day it was
// taken (ISO "YYYY-MM-DD"). One record per day; a second write for the same
// day overwrites the first.
type WeightLog struct {
	// MeasuredAt is the primary key, an ISO "YYYY-MM-DD" calendar date.
	MeasuredAt string `json:"measured_at" db:"measured_at"`

	// WeightKg is the measured body weight.
	WeightKg float64 `json:"weight_kg" db:"weight_kg"`

	// Note is free-form text attached to the measurement.
	Note string `json:"note,omitempty" db:"note"`
}
