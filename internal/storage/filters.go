// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package storage

import (
	"sort"
	"time"

	"github.com/tomtom215/wellspring/internal/models"
)

// Filter and sort helpers shared by the memory and Badger stores. Both
// backends load a user's documents and shape them here so the two
// implementations cannot drift apart on list semantics.

func filterEntries(entries []models.JournalEntry, f JournalFilter) []models.JournalEntry {
	out := entries[:0:0]
	for _, e := range entries {
		if f.Synthetic != nil && e.IsSynthetic() != *f.Synthetic {
			continue
		}
		if f.WithMood && e.MoodScore == nil {
			continue
		}
		if !f.Since.IsZero() && e.CreatedAt.Before(f.Since) {
			continue
		}
		out = append(out, e)
	}
	sortEntries(out, f.Sort)
	return limit(out, f.Limit)
}

func filterTasks(tasks []models.Task, f TaskFilter) []models.Task {
	out := tasks[:0:0]
	for _, t := range tasks {
		if f.Completed != nil && t.Completed != *f.Completed {
			continue
		}
		// A bounded due window only matches tasks that carry a due date.
		if !f.DueFrom.IsZero() && (t.DueDate == nil || t.DueDate.Before(f.DueFrom)) {
			continue
		}
		if !f.DueBefore.IsZero() && (t.DueDate == nil || !t.DueDate.Before(f.DueBefore)) {
			continue
		}
		if f.GoalID != "" && t.GoalID != f.GoalID {
			continue
		}
		out = append(out, t)
	}
	sortTasks(out, f.Sort)
	return limit(out, f.Limit)
}

func filterGoals(goals []models.Goal, f GoalFilter) []models.Goal {
	out := goals[:0:0]
	for _, g := range goals {
		if f.Status != "" && g.Status != f.Status {
			continue
		}
		if f.Category != "" && g.Category != f.Category {
			continue
		}
		out = append(out, g)
	}
	sortGoals(out, f.Sort)
	return out
}

func filterHabits(habits []models.Habit, f HabitFilter) []models.Habit {
	out := habits[:0:0]
	for _, h := range habits {
		if f.Active != nil && h.Active != *f.Active {
			continue
		}
		out = append(out, h)
	}
	sortHabits(out, f.Sort)
	return out
}

func limit[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}

// ordered applies the sort direction to a three-way comparison and
// breaks ties by ID so list order is deterministic across backends.
func ordered(c int, desc bool, idA, idB string) bool {
	if c == 0 {
		return idA < idB
	}
	if desc {
		return c > 0
	}
	return c < 0
}

func timeCmp(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// dueCmp orders by due date with undated tasks after dated ones.
func dueCmp(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return timeCmp(*a, *b)
	}
}

func stringCmp(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// sortEntries orders by creation time only. Entries are append-only and
// carry no other sortable field.
func sortEntries(entries []models.JournalEntry, order SortOrder) {
	o := order.normalized()
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		return ordered(timeCmp(a.CreatedAt, b.CreatedAt), o.Desc, a.ID, b.ID)
	})
}

func sortTasks(tasks []models.Task, order SortOrder) {
	o := order.normalized()
	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		var c int
		switch o.Field {
		case SortUpdatedAt:
			c = timeCmp(a.UpdatedAt, b.UpdatedAt)
		case SortDueDate:
			c = dueCmp(a.DueDate, b.DueDate)
		case SortTitle:
			c = stringCmp(a.Title, b.Title)
		default:
			c = timeCmp(a.CreatedAt, b.CreatedAt)
		}
		return ordered(c, o.Desc, a.ID, b.ID)
	})
}

func sortGoals(goals []models.Goal, order SortOrder) {
	o := order.normalized()
	sort.Slice(goals, func(i, j int) bool {
		a, b := goals[i], goals[j]
		var c int
		switch o.Field {
		case SortUpdatedAt:
			c = timeCmp(a.UpdatedAt, b.UpdatedAt)
		case SortDueDate:
			c = dueCmp(a.TargetDate, b.TargetDate)
		case SortTitle:
			c = stringCmp(a.Title, b.Title)
		default:
			c = timeCmp(a.CreatedAt, b.CreatedAt)
		}
		return ordered(c, o.Desc, a.ID, b.ID)
	})
}

func sortHabits(habits []models.Habit, order SortOrder) {
	o := order.normalized()
	sort.Slice(habits, func(i, j int) bool {
		a, b := habits[i], habits[j]
		var c int
		switch o.Field {
		case SortUpdatedAt:
			c = timeCmp(a.UpdatedAt, b.UpdatedAt)
		case SortTitle:
			c = stringCmp(a.Name, b.Name)
		default:
			c = timeCmp(a.CreatedAt, b.CreatedAt)
		}
		return ordered(c, o.Desc, a.ID, b.ID)
	})
}
