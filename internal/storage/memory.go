// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/wellspring/internal/models"
)

// MemoryStore is an in-memory implementation of Store. Suitable for
// development and testing, and the automatic fallback when the Badger
// directory cannot be opened. All data is lost on process exit.
//
// IDs are per-entity monotonic counters rendered "<entity>-<n>" so log
// lines and test failures reveal which backend produced a record.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[string]models.User
	emails  map[string]string // lowercased email -> user ID
	entries map[string]models.JournalEntry
	tasks   map[string]models.Task
	goals   map[string]models.Goal
	habits  map[string]models.Habit
	seq     map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]models.User),
		emails:  make(map[string]string),
		entries: make(map[string]models.JournalEntry),
		tasks:   make(map[string]models.Task),
		goals:   make(map[string]models.Goal),
		habits:  make(map[string]models.Habit),
		seq:     make(map[string]int),
	}
}

// nextID returns the next counter ID for the entity. Callers hold mu.
func (s *MemoryStore) nextID(entity string) string {
	s.seq[entity]++
	return fmt.Sprintf("%s-%d", entity, s.seq[entity])
}

// Users

// CreateUser stores a new user, assigning its ID and lowercasing the email.
func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(user.Email))
	if _, taken := s.emails[email]; taken {
		return ErrDuplicateEmail
	}

	user.ID = s.nextID("user")
	user.Email = email
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	s.users[user.ID] = *user
	s.emails[email] = user.ID
	return nil
}

// GetUserByID retrieves a user by ID.
func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// GetUserByEmail retrieves a user by email, matched case-insensitively.
func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ErrNotFound
	}
	u := s.users[id]
	return &u, nil
}

// UpdateUser applies the patch and returns the updated user.
func (s *MemoryStore) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u = patch.Apply(u)
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return &u, nil
}

// Journal entries

// CreateEntry stores a new journal entry, assigning its ID.
func (s *MemoryStore) CreateEntry(ctx context.Context, entry *models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextID("journal")
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	s.entries[entry.ID] = cloneEntry(*entry)
	return nil
}

// GetEntry retrieves one of the user's journal entries.
func (s *MemoryStore) GetEntry(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok || e.UserID != userID {
		return nil, ErrNotFound
	}
	e = cloneEntry(e)
	return &e, nil
}

// ListEntries returns the user's journal entries per the filter.
func (s *MemoryStore) ListEntries(ctx context.Context, userID string, filter JournalFilter) ([]models.JournalEntry, error) {
	s.mu.RLock()
	all := make([]models.JournalEntry, 0, 16)
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		all = append(all, cloneEntry(e))
	}
	s.mu.RUnlock()

	return filterEntries(all, filter), nil
}

// DeleteEntry removes one of the user's journal entries.
func (s *MemoryStore) DeleteEntry(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || e.UserID != userID {
		return ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

// Tasks

// CreateTask stores a new task, assigning its ID.
func (s *MemoryStore) CreateTask(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextID("task")
	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}
	s.tasks[task.ID] = cloneTask(*task)
	return nil
}

// GetTask retrieves one of the user's tasks.
func (s *MemoryStore) GetTask(ctx context.Context, userID, id string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return nil, ErrNotFound
	}
	t = cloneTask(t)
	return &t, nil
}

// ListTasks returns the user's tasks per the filter.
func (s *MemoryStore) ListTasks(ctx context.Context, userID string, filter TaskFilter) ([]models.Task, error) {
	s.mu.RLock()
	all := make([]models.Task, 0, 16)
	for _, t := range s.tasks {
		if t.UserID != userID {
			continue
		}
		all = append(all, cloneTask(t))
	}
	s.mu.RUnlock()

	return filterTasks(all, filter), nil
}

// UpdateTask applies the patch, keeping CompletedAt consistent with the
// Completed flag, and returns the updated task.
func (s *MemoryStore) UpdateTask(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.tasks[id]
	if !ok || prev.UserID != userID {
		return nil, ErrNotFound
	}

	next := patch.Apply(prev)
	now := time.Now().UTC()
	syncTaskCompletion(&next, prev.Completed, now)
	next.UpdatedAt = now

	s.tasks[id] = cloneTask(next)
	return &next, nil
}

// DeleteTask removes one of the user's tasks.
func (s *MemoryStore) DeleteTask(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

// Goals

// CreateGoal stores a new goal, assigning its ID.
func (s *MemoryStore) CreateGoal(ctx context.Context, goal *models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal.ID = s.nextID("goal")
	now := time.Now().UTC()
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = now
	}
	if goal.UpdatedAt.IsZero() {
		goal.UpdatedAt = goal.CreatedAt
	}
	s.goals[goal.ID] = cloneGoal(*goal)
	return nil
}

// GetGoal retrieves one of the user's goals.
func (s *MemoryStore) GetGoal(ctx context.Context, userID, id string) (*models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.goals[id]
	if !ok || g.UserID != userID {
		return nil, ErrNotFound
	}
	g = cloneGoal(g)
	return &g, nil
}

// ListGoals returns the user's goals per the filter.
func (s *MemoryStore) ListGoals(ctx context.Context, userID string, filter GoalFilter) ([]models.Goal, error) {
	s.mu.RLock()
	all := make([]models.Goal, 0, 16)
	for _, g := range s.goals {
		if g.UserID != userID {
			continue
		}
		all = append(all, cloneGoal(g))
	}
	s.mu.RUnlock()

	return filterGoals(all, filter), nil
}

// UpdateGoal applies the patch, keeping CompletedAt consistent with the
// status transitions, and returns the updated goal.
func (s *MemoryStore) UpdateGoal(ctx context.Context, userID, id string, patch models.GoalPatch) (*models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.goals[id]
	if !ok || prev.UserID != userID {
		return nil, ErrNotFound
	}

	next := patch.Apply(prev)
	now := time.Now().UTC()
	syncGoalCompletion(&next, prev.Status, now)
	next.UpdatedAt = now

	s.goals[id] = cloneGoal(next)
	return &next, nil
}

// DeleteGoal removes one of the user's goals.
func (s *MemoryStore) DeleteGoal(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok || g.UserID != userID {
		return ErrNotFound
	}
	delete(s.goals, id)
	return nil
}

// Habits

// CreateHabit stores a new habit, assigning its ID.
func (s *MemoryStore) CreateHabit(ctx context.Context, habit *models.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit.ID = s.nextID("habit")
	now := time.Now().UTC()
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = now
	}
	if habit.UpdatedAt.IsZero() {
		habit.UpdatedAt = habit.CreatedAt
	}
	s.habits[habit.ID] = cloneHabit(*habit)
	return nil
}

// GetHabit retrieves one of the user's habits.
func (s *MemoryStore) GetHabit(ctx context.Context, userID, id string) (*models.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.habits[id]
	if !ok || h.UserID != userID {
		return nil, ErrNotFound
	}
	h = cloneHabit(h)
	return &h, nil
}

// ListHabits returns the user's habits per the filter.
func (s *MemoryStore) ListHabits(ctx context.Context, userID string, filter HabitFilter) ([]models.Habit, error) {
	s.mu.RLock()
	all := make([]models.Habit, 0, 16)
	for _, h := range s.habits {
		if h.UserID != userID {
			continue
		}
		all = append(all, cloneHabit(h))
	}
	s.mu.RUnlock()

	return filterHabits(all, filter), nil
}

// UpdateHabit applies the patch and returns the updated habit.
func (s *MemoryStore) UpdateHabit(ctx context.Context, userID, id string, patch models.HabitPatch) (*models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.habits[id]
	if !ok || h.UserID != userID {
		return nil, ErrNotFound
	}

	next := patch.Apply(h)
	next.UpdatedAt = time.Now().UTC()
	s.habits[id] = cloneHabit(next)
	return &next, nil
}

// ReplaceHabit stores the habit document wholesale, touching UpdatedAt.
func (s *MemoryStore) ReplaceHabit(ctx context.Context, habit *models.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.habits[habit.ID]
	if !ok || prev.UserID != habit.UserID {
		return ErrNotFound
	}
	habit.UpdatedAt = time.Now().UTC()
	s.habits[habit.ID] = cloneHabit(*habit)
	return nil
}

// DeleteHabit removes one of the user's habits.
func (s *MemoryStore) DeleteHabit(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.habits[id]
	if !ok || h.UserID != userID {
		return ErrNotFound
	}
	delete(s.habits, id)
	return nil
}

// Kind identifies the backend.
func (s *MemoryStore) Kind() string {
	return KindMemory
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// Clone helpers. Stored values are detached from caller-held values on both
// write and read so no external mutation can reach internal state.

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneEntry(e models.JournalEntry) models.JournalEntry {
	if e.MoodScore != nil {
		v := *e.MoodScore
		e.MoodScore = &v
	}
	// Top-level copy is enough: entries are append-only and the analysis
	// payload is never mutated after creation.
	if e.AIResponse != nil {
		m := make(map[string]any, len(e.AIResponse))
		for k, v := range e.AIResponse {
			m[k] = v
		}
		e.AIResponse = m
	}
	return e
}

func cloneTask(t models.Task) models.Task {
	t.DueDate = cloneTime(t.DueDate)
	t.CompletedAt = cloneTime(t.CompletedAt)
	return t
}

func cloneGoal(g models.Goal) models.Goal {
	g.TargetDate = cloneTime(g.TargetDate)
	g.CompletedAt = cloneTime(g.CompletedAt)
	if g.Milestones != nil {
		ms := make([]models.Milestone, len(g.Milestones))
		copy(ms, g.Milestones)
		for i := range ms {
			ms[i].CompletedAt = cloneTime(ms[i].CompletedAt)
		}
		g.Milestones = ms
	}
	return g
}

func cloneHabit(h models.Habit) models.Habit {
	if h.TargetDays != nil {
		days := make([]string, len(h.TargetDays))
		copy(days, h.TargetDays)
		h.TargetDays = days
	}
	if h.Completions != nil {
		cs := make([]models.HabitCompletion, len(h.Completions))
		copy(cs, h.Completions)
		h.Completions = cs
	}
	return h
}

// Compile-time interface assertion.
var _ Store = (*MemoryStore)(nil)
