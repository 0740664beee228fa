// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/wellspring/internal/models"
)

// BadgerStore is the durable implementation of Store, backed by an embedded
// BadgerDB instance. Every record is a JSON document; per-user ownership is
// enforced by key construction, so a lookup with the wrong user ID simply
// misses.
//
// Key layout:
//
//	user:<id>                 user document
//	user_email:<lower-email>  unique index, value is the user ID
//	journal:<userID>:<id>     journal entry document
//	task:<userID>:<id>        task document
//	goal:<userID>:<id>        goal document
//	habit:<userID>:<id>       habit document
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore wraps an already opened BadgerDB. The store takes ownership
// of the handle; Close closes it.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

func userKey(id string) []byte            { return []byte("user:" + id) }
func emailKey(email string) []byte        { return []byte("user_email:" + email) }
func entryKey(userID, id string) []byte   { return []byte("journal:" + userID + ":" + id) }
func taskKey(userID, id string) []byte    { return []byte("task:" + userID + ":" + id) }
func goalKey(userID, id string) []byte    { return []byte("goal:" + userID + ":" + id) }
func habitKey(userID, id string) []byte   { return []byte("habit:" + userID + ":" + id) }
func entryPrefix(userID string) []byte    { return []byte("journal:" + userID + ":") }
func taskPrefix(userID string) []byte     { return []byte("task:" + userID + ":") }
func goalPrefix(userID string) []byte     { return []byte("goal:" + userID + ":") }
func habitPrefix(userID string) []byte    { return []byte("habit:" + userID + ":") }

// userRecord is the persisted form of a user. models.User excludes the
// password hash from JSON so it can never leak through an API response; the
// store needs it on disk, so it converts at the persistence boundary.
type userRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toUserRecord(u models.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r userRecord) user() models.User {
	return models.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// getValue loads and decodes one document inside a transaction. Missing keys
// map to ErrNotFound, which also covers malformed IDs.
func getValue(txn *badger.Txn, key []byte, out any) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, out); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		return nil
	})
}

// setValue encodes and stores one document inside a transaction.
func setValue(txn *badger.Txn, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := txn.Set(key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// deleteValue removes one document, returning ErrNotFound when absent.
func deleteValue(txn *badger.Txn, key []byte) error {
	if _, err := txn.Get(key); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := txn.Delete(key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Users

// CreateUser stores a new user, assigning its ID and lowercasing the email.
// The email uniqueness check and both writes happen in one transaction.
func (s *BadgerStore) CreateUser(ctx context.Context, user *models.User) error {
	email := strings.ToLower(strings.TrimSpace(user.Email))
	user.ID = uuid.NewString()
	user.Email = email
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(emailKey(email))
		if err == nil {
			return ErrDuplicateEmail
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check email index: %w", err)
		}
		if err := setValue(txn, userKey(user.ID), toUserRecord(*user)); err != nil {
			return err
		}
		if err := txn.Set(emailKey(email), []byte(user.ID)); err != nil {
			return fmt.Errorf("set email index: %w", err)
		}
		return nil
	})
}

// GetUserByID retrieves a user by ID.
func (s *BadgerStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var rec userRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return getValue(txn, userKey(id), &rec)
	})
	if err != nil {
		return nil, err
	}
	u := rec.user()
	return &u, nil
}

// GetUserByEmail retrieves a user via the email index.
func (s *BadgerStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	lower := strings.ToLower(strings.TrimSpace(email))
	var rec userRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(lower))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get email index: %w", err)
		}
		var userID string
		if err := item.Value(func(val []byte) error {
			userID = string(val)
			return nil
		}); err != nil {
			return fmt.Errorf("read email index: %w", err)
		}
		return getValue(txn, userKey(userID), &rec)
	})
	if err != nil {
		return nil, err
	}
	u := rec.user()
	return &u, nil
}

// UpdateUser applies the patch and returns the updated user.
func (s *BadgerStore) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	var next models.User
	err := s.db.Update(func(txn *badger.Txn) error {
		var rec userRecord
		if err := getValue(txn, userKey(id), &rec); err != nil {
			return err
		}
		next = patch.Apply(rec.user())
		next.UpdatedAt = time.Now().UTC()
		return setValue(txn, userKey(id), toUserRecord(next))
	})
	if err != nil {
		return nil, err
	}
	return &next, nil
}

// Journal entries

// CreateEntry stores a new journal entry, assigning its ID.
func (s *BadgerStore) CreateEntry(ctx context.Context, entry *models.JournalEntry) error {
	entry.ID = uuid.NewString()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return setValue(txn, entryKey(entry.UserID, entry.ID), entry)
	})
}

// GetEntry retrieves one of the user's journal entries.
func (s *BadgerStore) GetEntry(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := s.db.View(func(txn *badger.Txn) error {
		return getValue(txn, entryKey(userID, id), &e)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEntries returns the user's journal entries per the filter.
func (s *BadgerStore) ListEntries(ctx context.Context, userID string, filter JournalFilter) ([]models.JournalEntry, error) {
	var all []models.JournalEntry
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := entryPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var e models.JournalEntry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			all = append(all, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return filterEntries(all, filter), nil
}

// DeleteEntry removes one of the user's journal entries.
func (s *BadgerStore) DeleteEntry(ctx context.Context, userID, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return deleteValue(txn, entryKey(userID, id))
	})
}

// Tasks

// CreateTask stores a new task, assigning its ID.
func (s *BadgerStore) CreateTask(ctx context.Context, task *models.Task) error {
	task.ID = uuid.NewString()
	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return setValue(txn, taskKey(task.UserID, task.ID), task)
	})
}

// GetTask retrieves one of the user's tasks.
func (s *BadgerStore) GetTask(ctx context.Context, userID, id string) (*models.Task, error) {
	var t models.Task
	err := s.db.View(func(txn *badger.Txn) error {
		return getValue(txn, taskKey(userID, id), &t)
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasks returns the user's tasks per the filter.
func (s *BadgerStore) ListTasks(ctx context.Context, userID string, filter TaskFilter) ([]models.Task, error) {
	var all []models.Task
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := taskPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var t models.Task
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &t)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			all = append(all, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return filterTasks(all, filter), nil
}

// UpdateTask applies the patch inside one transaction, keeping CompletedAt
// consistent with the Completed flag, and returns the updated task.
func (s *BadgerStore) UpdateTask(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error) {
	var next models.Task
	err := s.db.Update(func(txn *badger.Txn) error {
		var prev models.Task
		if err := getValue(txn, taskKey(userID, id), &prev); err != nil {
			return err
		}
		next = patch.Apply(prev)
		now := time.Now().UTC()
		syncTaskCompletion(&next, prev.Completed, now)
		next.UpdatedAt = now
		return setValue(txn, taskKey(userID, id), next)
	})
	if err != nil {
		return nil, err
	}
	return &next, nil
}

// DeleteTask removes one of the user's tasks.
func (s *BadgerStore) DeleteTask(ctx context.Context, userID, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return deleteValue(txn, taskKey(userID, id))
	})
}

// Goals

// CreateGoal stores a new goal, assigning its ID.
func (s *BadgerStore) CreateGoal(ctx context.Context, goal *models.Goal) error {
	goal.ID = uuid.NewString()
	now := time.Now().UTC()
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = now
	}
	if goal.UpdatedAt.IsZero() {
		goal.UpdatedAt = goal.CreatedAt
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return setValue(txn, goalKey(goal.UserID, goal.ID), goal)
	})
}

// GetGoal retrieves one of the user's goals.
func (s *BadgerStore) GetGoal(ctx context.Context, userID, id string) (*models.Goal, error) {
	var g models.Goal
	err := s.db.View(func(txn *badger.Txn) error {
		return getValue(txn, goalKey(userID, id), &g)
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGoals returns the user's goals per the filter.
func (s *BadgerStore) ListGoals(ctx context.Context, userID string, filter GoalFilter) ([]models.Goal, error) {
	var all []models.Goal
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := goalPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var g models.Goal
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &g)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			all = append(all, g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return filterGoals(all, filter), nil
}

// UpdateGoal applies the patch inside one transaction, keeping CompletedAt
// consistent with the status transitions, and returns the updated goal.
func (s *BadgerStore) UpdateGoal(ctx context.Context, userID, id string, patch models.GoalPatch) (*models.Goal, error) {
	var next models.Goal
	err := s.db.Update(func(txn *badger.Txn) error {
		var prev models.Goal
		if err := getValue(txn, goalKey(userID, id), &prev); err != nil {
			return err
		}
		next = patch.Apply(prev)
		now := time.Now().UTC()
		syncGoalCompletion(&next, prev.Status, now)
		next.UpdatedAt = now
		return setValue(txn, goalKey(userID, id), next)
	})
	if err != nil {
		return nil, err
	}
	return &next, nil
}

// DeleteGoal removes one of the user's goals.
func (s *BadgerStore) DeleteGoal(ctx context.Context, userID, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return deleteValue(txn, goalKey(userID, id))
	})
}

// Habits

// CreateHabit stores a new habit, assigning its ID.
func (s *BadgerStore) CreateHabit(ctx context.Context, habit *models.Habit) error {
	habit.ID = uuid.NewString()
	now := time.Now().UTC()
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = now
	}
	if habit.UpdatedAt.IsZero() {
		habit.UpdatedAt = habit.CreatedAt
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return setValue(txn, habitKey(habit.UserID, habit.ID), habit)
	})
}

// GetHabit retrieves one of the user's habits.
func (s *BadgerStore) GetHabit(ctx context.Context, userID, id string) (*models.Habit, error) {
	var h models.Habit
	err := s.db.View(func(txn *badger.Txn) error {
		return getValue(txn, habitKey(userID, id), &h)
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListHabits returns the user's habits per the filter.
func (s *BadgerStore) ListHabits(ctx context.Context, userID string, filter HabitFilter) ([]models.Habit, error) {
	var all []models.Habit
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := habitPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var h models.Habit
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &h)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			all = append(all, h)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return filterHabits(all, filter), nil
}

// UpdateHabit applies the patch and returns the updated habit.
func (s *BadgerStore) UpdateHabit(ctx context.Context, userID, id string, patch models.HabitPatch) (*models.Habit, error) {
	var next models.Habit
	err := s.db.Update(func(txn *badger.Txn) error {
		var prev models.Habit
		if err := getValue(txn, habitKey(userID, id), &prev); err != nil {
			return err
		}
		next = patch.Apply(prev)
		next.UpdatedAt = time.Now().UTC()
		return setValue(txn, habitKey(userID, id), next)
	})
	if err != nil {
		return nil, err
	}
	return &next, nil
}

// ReplaceHabit stores the habit document wholesale, touching UpdatedAt.
func (s *BadgerStore) ReplaceHabit(ctx context.Context, habit *models.Habit) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := habitKey(habit.UserID, habit.ID)
		var prev models.Habit
		if err := getValue(txn, key, &prev); err != nil {
			return err
		}
		habit.UpdatedAt = time.Now().UTC()
		return setValue(txn, key, habit)
	})
}

// DeleteHabit removes one of the user's habits.
func (s *BadgerStore) DeleteHabit(ctx context.Context, userID, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return deleteValue(txn, habitKey(userID, id))
	})
}

// Kind identifies the backend.
func (s *BadgerStore) Kind() string {
	return KindBadger
}

// Close closes the underlying BadgerDB.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// RunMaintenance runs value-log garbage collection until Badger reports
// nothing left to rewrite. Called periodically by the supervised
// maintenance service.
func (s *BadgerStore) RunMaintenance() error {
	for {
		err := s.db.RunValueLogGC(0.5)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run value log GC: %w", err)
		}
	}
}

// Compile-time interface assertions.
var (
	_ Store      = (*BadgerStore)(nil)
	_ Maintainer = (*BadgerStore)(nil)
)
