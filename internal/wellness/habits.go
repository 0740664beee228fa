// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package wellness

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/wellspring/internal/logging"
	"github.com/tomtom215/wellspring/internal/metrics"
	"github.com/tomtom215/wellspring/internal/models"
	"github.com/tomtom215/wellspring/internal/storage"
)

// CreateHabit persists a new habit for the user. Name is required; the
// frequency defaults to daily and every habit starts active with no
// completions and a zero streak.
func (s *Service) CreateHabit(ctx context.Context, userID string, habit models.Habit) (*models.Habit, error) {
	habit.Name = strings.TrimSpace(habit.Name)
	if habit.Name == "" {
		return nil, ErrNameRequired
	}

	habit.ID = ""
	habit.UserID = userID
	if habit.Frequency == "" {
		habit.Frequency = models.FrequencyDaily
	}
	habit.Active = true
	habit.Streak = models.Streak{}
	habit.Completions = []models.HabitCompletion{}

	if err := s.store.CreateHabit(ctx, &habit); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().Str("habit_id", habit.ID).Msg("Habit created")
	return &habit, nil
}

// ListHabits returns all of the user's habits, newest first.
func (s *Service) ListHabits(ctx context.Context, userID string) ([]models.Habit, error) {
	return s.store.ListHabits(ctx, userID, storage.HabitFilter{})
}

// UpdateHabit applies the patch and returns the stored result. Completions
// and streak are not patchable; they change only through CompleteHabit.
func (s *Service) UpdateHabit(ctx context.Context, userID, habitID string, patch models.HabitPatch) (*models.Habit, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		patch.Name = &name
	}
	return s.store.UpdateHabit(ctx, userID, habitID, patch)
}

// DeleteHabit removes the user's habit. Missing or unowned habits surface
// as storage.ErrNotFound.
func (s *Service) DeleteHabit(ctx context.Context, userID, habitID string) error {
	return s.store.DeleteHabit(ctx, userID, habitID)
}

// CompleteHabit records a completion for today's UTC calendar date and
// recomputes the streak. A habit can be completed at most once per day;
// a second attempt returns ErrHabitCompletedToday.
//
// The duplicate check and the write are separate store operations, so two
// requests racing through the gap can both record today.
func (s *Service) CompleteHabit(ctx context.Context, userID, habitID, notes string) (*models.Habit, error) {
	habit, err := s.store.GetHabit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if habit.CompletedOn(now) {
		return nil, ErrHabitCompletedToday
	}

	habit.Completions = append(habit.Completions, models.HabitCompletion{
		Date:  now,
		Notes: strings.TrimSpace(notes),
	})
	habit.Streak.Current = currentStreak(habit.Completions)
	if habit.Streak.Current > habit.Streak.Longest {
		habit.Streak.Longest = habit.Streak.Current
	}

	if err := s.store.ReplaceHabit(ctx, habit); err != nil {
		return nil, err
	}

	metrics.RecordHabitCompletion()
	logging.Ctx(ctx).Info().
		Str("habit_id", habit.ID).
		Int("current_streak", habit.Streak.Current).
		Msg("Habit completed")
	return habit, nil
}

// currentStreak counts consecutive UTC calendar days ending at the most
// recent completion. Duplicate same-day completions (possible in data
// written before the one-per-day rule) collapse to one day.
func currentStreak(completions []models.HabitCompletion) int {
	if len(completions) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(completions))
	days := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		y, m, d := c.Date.UTC().Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	// UTC calendar days are exactly 24h apart
	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}
