// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package storage

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/wellspring/internal/models"
)

// Sentinel errors returned by all Store implementations.
var (
	// ErrNotFound indicates the requested record does not exist for the
	// given user. Malformed IDs map here too.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail indicates the registration email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store kinds reported by Kind().
const (
	KindMemory = "memory"
	KindBadger = "badger"
)

// SortField names the single key a list operation may sort by.
type SortField string

// Sortable fields. Not every field applies to every entity; the filter
// helpers fall back to SortCreatedAt for fields an entity does not carry.
const (
	SortCreatedAt SortField = "createdAt"
	SortUpdatedAt SortField = "updatedAt"
	SortDueDate   SortField = "dueDate"
	SortTitle     SortField = "title"
)

// SortOrder is a single-key sort. The zero value means SortCreatedAt
// descending (newest first), which is the default everywhere.
type SortOrder struct {
	Field SortField
	Desc  bool
}

// normalized returns the sort with defaults applied.
func (s SortOrder) normalized() SortOrder {
	if s.Field == "" {
		return SortOrder{Field: SortCreatedAt, Desc: true}
	}
	return s
}

// JournalFilter narrows and orders a journal listing.
type JournalFilter struct {
	// Synthetic selects entries by provenance: nil for all, true for only
	// synthetic task-completion markers, false for only genuine entries.
	Synthetic *bool

	// WithMood keeps only entries carrying a mood score.
	WithMood bool

	// Since drops entries created before the given instant. Zero = no bound.
	Since time.Time

	// Limit caps the result after sorting. Zero = no cap.
	Limit int

	Sort SortOrder
}

// TaskFilter narrows and orders a task listing.
type TaskFilter struct {
	// Completed selects by completion state; nil for all.
	Completed *bool

	// DueFrom/DueBefore bound the due date (inclusive from, inclusive
	// before). Tasks without a due date never match a bounded window.
	// Zero values mean unbounded.
	DueFrom   time.Time
	DueBefore time.Time

	// GoalID keeps only tasks linked to the given goal. Empty = all.
	GoalID string

	// Limit caps the result after sorting. Zero = no cap.
	Limit int

	Sort SortOrder
}

// GoalFilter narrows and orders a goal listing.
type GoalFilter struct {
	// Status keeps only goals in the given state. Empty = all.
	Status models.GoalStatus

	// Category keeps only goals in the given category. Empty = all.
	Category models.GoalCategory

	Sort SortOrder
}

// HabitFilter narrows and orders a habit listing.
type HabitFilter struct {
	// Active selects by active flag; nil for all.
	Active *bool

	Sort SortOrder
}

// Store is the persistence contract. Both backends implement it completely;
// callers hold a Store and never know which one they got.
//
// Create* operations assign the entity ID and stamp zero CreatedAt/UpdatedAt
// fields with the current UTC time (pre-set timestamps are preserved, which
// tests rely on). Update* operations apply the patch and touch UpdatedAt.
type Store interface {
	// Users

	// CreateUser stores a new user, assigning its ID. The email is
	// lowercased before storing. Returns ErrDuplicateEmail if the email
	// is already registered.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID returns the user with the given ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByEmail returns the user registered under the given email,
	// matched case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateUser applies the patch and returns the updated user.
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)

	// Journal entries

	// CreateEntry stores a new journal entry, assigning its ID.
	CreateEntry(ctx context.Context, entry *models.JournalEntry) error

	// GetEntry returns one of the user's journal entries.
	GetEntry(ctx context.Context, userID, id string) (*models.JournalEntry, error)

	// ListEntries returns the user's journal entries per the filter.
	ListEntries(ctx context.Context, userID string, filter JournalFilter) ([]models.JournalEntry, error)

	// DeleteEntry removes one of the user's journal entries.
	DeleteEntry(ctx context.Context, userID, id string) error

	// Tasks

	// CreateTask stores a new task, assigning its ID.
	CreateTask(ctx context.Context, task *models.Task) error

	// GetTask returns one of the user's tasks.
	GetTask(ctx context.Context, userID, id string) (*models.Task, error)

	// ListTasks returns the user's tasks per the filter.
	ListTasks(ctx context.Context, userID string, filter TaskFilter) ([]models.Task, error)

	// UpdateTask applies the patch and returns the updated task.
	// CompletedAt is kept consistent with Completed: stamped when the
	// patch flips it on, cleared when the patch flips it off.
	UpdateTask(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error)

	// DeleteTask removes one of the user's tasks.
	DeleteTask(ctx context.Context, userID, id string) error

	// Goals

	// CreateGoal stores a new goal, assigning its ID.
	CreateGoal(ctx context.Context, goal *models.Goal) error

	// GetGoal returns one of the user's goals.
	GetGoal(ctx context.Context, userID, id string) (*models.Goal, error)

	// ListGoals returns the user's goals per the filter.
	ListGoals(ctx context.Context, userID string, filter GoalFilter) ([]models.Goal, error)

	// UpdateGoal applies the patch and returns the updated goal.
	// CompletedAt is kept consistent with Status: stamped on the
	// transition to completed, cleared on the transition away from it.
	UpdateGoal(ctx context.Context, userID, id string, patch models.GoalPatch) (*models.Goal, error)

	// DeleteGoal removes one of the user's goals.
	DeleteGoal(ctx context.Context, userID, id string) error

	// Habits

	// CreateHabit stores a new habit, assigning its ID.
	CreateHabit(ctx context.Context, habit *models.Habit) error

	// GetHabit returns one of the user's habits.
	GetHabit(ctx context.Context, userID, id string) (*models.Habit, error)

	// ListHabits returns the user's habits per the filter.
	ListHabits(ctx context.Context, userID string, filter HabitFilter) ([]models.Habit, error)

	// UpdateHabit applies the patch and returns the updated habit.
	// Completions and streaks are not patchable; see ReplaceHabit.
	UpdateHabit(ctx context.Context, userID, id string, patch models.HabitPatch) (*models.Habit, error)

	// ReplaceHabit stores the habit document wholesale, touching
	// UpdatedAt. It is the persistence half of the completion flow, which
	// recomputes the derived completions and streak fields in the domain
	// layer.
	ReplaceHabit(ctx context.Context, habit *models.Habit) error

	// DeleteHabit removes one of the user's habits.
	DeleteHabit(ctx context.Context, userID, id string) error

	// Kind identifies the backend: KindMemory or KindBadger.
	Kind() string

	// Close releases backend resources. Safe to call once.
	Close() error
}

// Maintainer is implemented by stores with background maintenance work.
// The supervised maintenance service feature-detects it.
type Maintainer interface {
	// RunMaintenance performs one maintenance pass (value-log GC for
	// Badger). Returning an error is non-fatal.
	RunMaintenance() error
}

// syncTaskCompletion keeps CompletedAt consistent with the Completed flag
// across an update. Only the two transitions touch it; re-asserting the
// current state leaves the original stamp in place.
func syncTaskCompletion(t *models.Task, wasCompleted bool, now time.Time) {
	switch {
	case t.Completed && !wasCompleted:
		at := now
		t.CompletedAt = &at
	case !t.Completed && wasCompleted:
		t.CompletedAt = nil
	}
}

// syncGoalCompletion keeps CompletedAt consistent with Status across an
// update, mirroring syncTaskCompletion for the goal lifecycle.
func syncGoalCompletion(g *models.Goal, wasStatus models.GoalStatus, now time.Time) {
	switch {
	case g.Status == models.GoalCompleted && wasStatus != models.GoalCompleted:
		at := now
		g.CompletedAt = &at
	case g.Status != models.GoalCompleted && wasStatus == models.GoalCompleted:
		g.CompletedAt = nil
	}
}
