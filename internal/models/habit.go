// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package models

import (
	"time"
)

// Frequency is how often a habit is meant to be performed.
type Frequency string

// Habit frequencies. TargetDays is consulted only for FrequencyCustom.
const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}

// HabitCompletion records one check-in for a habit. At most one completion
// may exist per UTC calendar date; the domain layer rejects duplicates.
type HabitCompletion struct {
	Date  time.Time `json:"date"`
	Notes string    `json:"notes,omitempty"`
}

// Streak tracks the habit's consecutive-day run. Current is recomputed on
// every completion event by walking the completion dates backward from the
// most recent one; Longest never decreases.
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Habit represents a recurring practice with its completion history.
type Habit struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Frequency   Frequency         `json:"frequency"`
	TargetDays  []string          `json:"targetDays,omitempty"`
	Streak      Streak            `json:"streak"`
	Completions []HabitCompletion `json:"completions"`
	Active      bool              `json:"active"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// CompletedOn reports whether the habit has a completion on the given UTC
// calendar date.
func (h Habit) CompletedOn(day time.Time) bool {
	y, m, d := day.UTC().Date()
	for _, c := range h.Completions {
		cy, cm, cd := c.Date.UTC().Date()
		if cy == y && cm == m && cd == d {
			return true
		}
	}
	return false
}

// HabitPatch is a partial update to a Habit. Nil fields are left untouched.
// Completions and Streak are excluded by construction: they change only
// through the dedicated completion operation.
type HabitPatch struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Frequency   *Frequency `json:"frequency"`
	TargetDays  *[]string  `json:"targetDays"`
	Active      *bool      `json:"active"`
}

// Apply returns a copy of h with the non-nil patch fields applied.
func (p HabitPatch) Apply(h Habit) Habit {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.Frequency != nil {
		h.Frequency = *p.Frequency
	}
	if p.TargetDays != nil {
		days := make([]string, len(*p.TargetDays))
		copy(days, *p.TargetDays)
		h.TargetDays = days
	}
	if p.Active != nil {
		h.Active = *p.Active
	}
	return h
}
