// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package analytics

import (
	"context"
	"time"

	"github.com/tomtom215/wellspring/internal/models"
	"github.com/tomtom215/wellspring/internal/storage"
)

const (
	// upcomingWindow is how far ahead a due date may be to count as
	// upcoming.
	upcomingWindow = 72 * time.Hour

	// upcomingTaskCap limits the upcoming-tasks list.
	upcomingTaskCap = 5

	// recentEntryCap limits the dashboard's recent-entries list.
	recentEntryCap = 5
)

// HabitSummary is the dashboard's per-habit line: identity, streak, and
// whether it has been completed today.
type HabitSummary struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Frequency      models.Frequency `json:"frequency"`
	Streak         models.Streak    `json:"streak"`
	CompletedToday bool             `json:"completedToday"`
}

// Dashboard is the single aggregate backing the home screen.
type Dashboard struct {
	Stats         Stats                 `json:"stats"`
	RecentEntries []models.JournalEntry `json:"recentEntries"`
	UpcomingTasks []models.Task         `json:"upcomingTasks"`
	Insights      []Insight             `json:"insights"`
	Habits        []HabitSummary        `json:"habits"`
}

// UpcomingTasks returns incomplete tasks due within the next three days,
// soonest first, capped at five. Overdue tasks are not upcoming; they
// surface through the overdue insight instead.
func (s *Service) UpcomingTasks(ctx context.Context, userID string) ([]models.Task, error) {
	now := time.Now().UTC()
	incomplete := false
	return s.store.ListTasks(ctx, userID, storage.TaskFilter{
		Completed: &incomplete,
		DueFrom:   now,
		DueBefore: now.Add(upcomingWindow),
		Sort:      storage.SortOrder{Field: storage.SortDueDate},
		Limit:     upcomingTaskCap,
	})
}

// Dashboard assembles the aggregate view in one call: stats, recent genuine
// entries, upcoming tasks, insights, and the active-habit summary.
func (s *Service) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	entries, err := s.store.ListEntries(ctx, userID, storage.JournalFilter{})
	if err != nil {
		return nil, err
	}

	incomplete := false
	tasks, err := s.store.ListTasks(ctx, userID, storage.TaskFilter{Completed: &incomplete})
	if err != nil {
		return nil, err
	}

	goals, err := s.store.ListGoals(ctx, userID, storage.GoalFilter{Status: models.GoalActive})
	if err != nil {
		return nil, err
	}

	active := true
	habits, err := s.store.ListHabits(ctx, userID, storage.HabitFilter{Active: &active})
	if err != nil {
		return nil, err
	}

	upcoming, err := s.UpcomingTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stats := computeStats(entries, now)
	snap := buildSnapshot(stats, tasks, goals, habits, now)

	return &Dashboard{
		Stats:         stats,
		RecentEntries: recentGenuine(entries, recentEntryCap),
		UpcomingTasks: upcoming,
		Insights:      Insights(snap),
		Habits:        habitSummaries(habits, now),
	}, nil
}

// buildSnapshot gathers the insight-rule inputs. tasks must be the user's
// incomplete tasks, goals the active goals, habits the active habits.
func buildSnapshot(stats Stats, tasks []models.Task, goals []models.Goal, habits []models.Habit, now time.Time) Snapshot {
	snap := Snapshot{
		TotalSessions:  stats.TotalSessions,
		CompletedTasks: stats.CompletedTasks,
		AverageMood:    stats.AverageMood,
		DayStreak:      stats.DayStreak,
		ActiveGoals:    len(goals),
		ActiveHabits:   len(habits),
	}

	for _, h := range habits {
		if h.CompletedOn(now) {
			snap.HabitsCompletedToday++
		}
	}

	progress := 0
	for _, g := range goals {
		progress += g.Progress
	}
	if len(goals) > 0 {
		snap.AverageGoalProgress = float64(progress) / float64(len(goals))
	}

	for _, t := range tasks {
		if t.DueDate != nil && t.DueDate.Before(now) {
			snap.OverdueTasks++
		}
	}

	return snap
}

// recentGenuine returns the newest genuine entries up to limit. entries
// must already be sorted newest first, which is the store's default order.
func recentGenuine(entries []models.JournalEntry, limit int) []models.JournalEntry {
	recent := make([]models.JournalEntry, 0, limit)
	for _, e := range entries {
		if e.IsSynthetic() {
			continue
		}
		recent = append(recent, e)
		if len(recent) == limit {
			break
		}
	}
	return recent
}

// habitSummaries projects active habits into the dashboard lines.
func habitSummaries(habits []models.Habit, now time.Time) []HabitSummary {
	summaries := make([]HabitSummary, 0, len(habits))
	for _, h := range habits {
		summaries = append(summaries, HabitSummary{
			ID:             h.ID,
			Name:           h.Name,
			Frequency:      h.Frequency,
			Streak:         h.Streak,
			CompletedToday: h.CompletedOn(now),
		})
	}
	return summaries
}
