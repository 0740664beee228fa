// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestJournalEntryIsSynthetic(t *testing.T) {
	tests := []struct {
		name          string
		transcription string
		want          bool
	}{
		{
			name:          "task completion marker",
			transcription: "TASK_COMPLETED: Write report",
			want:          true,
		},
		{
			name:          "prefix without space",
			transcription: "TASK_COMPLETED:quick one",
			want:          true,
		},
		{
			name:          "genuine entry",
			transcription: "Today was a good day",
			want:          false,
		},
		{
			name:          "prefix mentioned mid-text",
			transcription: "I wrote TASK_COMPLETED: in my notes",
			want:          false,
		},
		{
			name:          "empty transcription",
			transcription: "",
			want:          false,
		},
		{
			name:          "lowercase is not the sentinel",
			transcription: "task_completed: something",
			want:          false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := JournalEntry{Transcription: tt.transcription}
			if got := e.IsSynthetic(); got != tt.want {
				t.Errorf("IsSynthetic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserPasswordHashNeverSerialized(t *testing.T) {
	u := User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$secret",
		Name:         "Alice",
	}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for key := range out {
		if key == "passwordHash" || key == "password" {
			t.Errorf("serialized user contains credential field %q", key)
		}
	}
	if out["email"] != "alice@example.com" {
		t.Errorf("email = %v, want alice@example.com", out["email"])
	}
}

func TestTaskPatchApply(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	title := "Updated"
	completed := true
	prio := PriorityHigh

	original := Task{
		ID:          "task-1",
		UserID:      "user-1",
		Title:       "Original",
		Description: "keep me",
		Priority:    PriorityMedium,
	}

	patched := TaskPatch{
		Title:     &title,
		DueDate:   &due,
		Priority:  &prio,
		Completed: &completed,
	}.Apply(original)

	if patched.Title != "Updated" {
		t.Errorf("Title = %q, want Updated", patched.Title)
	}
	if patched.Description != "keep me" {
		t.Errorf("Description = %q, want untouched value", patched.Description)
	}
	if patched.DueDate == nil || !patched.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", patched.DueDate, due)
	}
	if patched.Priority != PriorityHigh {
		t.Errorf("Priority = %q, want high", patched.Priority)
	}
	if !patched.Completed {
		t.Error("Completed = false, want true")
	}

	// Apply returns a new value; the original must be unchanged.
	if original.Title != "Original" || original.Completed {
		t.Error("Apply mutated the original task")
	}
}

func TestGoalPatchApplyCopiesMilestones(t *testing.T) {
	ms := []Milestone{
		{Title: "first", Completed: true},
		{Title: "second"},
	}
	patched := GoalPatch{Milestones: &ms}.Apply(Goal{ID: "goal-1"})

	if len(patched.Milestones) != 2 {
		t.Fatalf("Milestones len = %d, want 2", len(patched.Milestones))
	}

	// Mutating the source slice must not leak into the patched goal.
	ms[0].Title = "mutated"
	if patched.Milestones[0].Title != "first" {
		t.Error("patched goal aliases the patch milestone slice")
	}
}

func TestGoalPatchEmptyMilestonesClears(t *testing.T) {
	empty := []Milestone{}
	g := Goal{Milestones: []Milestone{{Title: "old"}}}

	patched := GoalPatch{Milestones: &empty}.Apply(g)
	if len(patched.Milestones) != 0 {
		t.Errorf("Milestones len = %d, want 0 after explicit clear", len(patched.Milestones))
	}

	untouched := GoalPatch{}.Apply(g)
	if len(untouched.Milestones) != 1 {
		t.Errorf("Milestones len = %d, want 1 when patch field absent", len(untouched.Milestones))
	}
}

func TestHabitCompletedOn(t *testing.T) {
	h := Habit{
		Completions: []HabitCompletion{
			{Date: time.Date(2026, 2, 10, 23, 59, 0, 0, time.UTC)},
			{Date: time.Date(2026, 2, 8, 6, 0, 0, 0, time.UTC)},
		},
	}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{
			name: "same date different hour",
			day:  time.Date(2026, 2, 10, 1, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "gap day",
			day:  time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "older completion",
			day:  time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.CompletedOn(tt.day); got != tt.want {
				t.Errorf("CompletedOn(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestEnumValidity(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		check func() bool
	}{
		{"priority medium", true, Priority("medium").Valid},
		{"priority urgent", false, Priority("urgent").Valid},
		{"category health", true, GoalCategory("health").Valid},
		{"category unknown", false, GoalCategory("money").Valid},
		{"status abandoned", true, GoalStatus("abandoned").Valid},
		{"status paused", false, GoalStatus("paused").Valid},
		{"frequency custom", true, Frequency("custom").Valid},
		{"frequency hourly", false, Frequency("hourly").Valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestHabitPatchCannotTouchStreak(t *testing.T) {
	h := Habit{
		Streak:      Streak{Current: 3, Longest: 9},
		Completions: []HabitCompletion{{Date: time.Now().UTC()}},
	}

	name := "renamed"
	active := false
	patched := HabitPatch{Name: &name, Active: &active}.Apply(h)

	if patched.Streak != h.Streak {
		t.Error("patch changed the streak record")
	}
	if len(patched.Completions) != 1 {
		t.Error("patch changed the completion history")
	}
	if patched.Name != "renamed" || patched.Active {
		t.Error("patch fields not applied")
	}
}
