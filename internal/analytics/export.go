// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package analytics

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/wellspring/internal/models"
	"github.com/tomtom215/wellspring/internal/storage"
)

// csvHeader is the journal export header row.
const csvHeader = "date,mood_score,transcription\n"

// Export is the full JSON dump of one user's data. Collections are never
// null, only empty, so consumers can iterate without nil checks.
type Export struct {
	ExportedAt time.Time             `json:"exportedAt"`
	Journal    []models.JournalEntry `json:"journal"`
	Tasks      []models.Task         `json:"tasks"`
	Goals      []models.Goal         `json:"goals"`
	Habits     []models.Habit        `json:"habits"`
}

// ExportJSON gathers all four of the user's collections, synthetic journal
// entries included, into one document.
func (s *Service) ExportJSON(ctx context.Context, userID string) (*Export, error) {
	entries, err := s.store.ListEntries(ctx, userID, storage.JournalFilter{})
	if err != nil {
		return nil, err
	}
	tasks, err := s.store.ListTasks(ctx, userID, storage.TaskFilter{})
	if err != nil {
		return nil, err
	}
	goals, err := s.store.ListGoals(ctx, userID, storage.GoalFilter{})
	if err != nil {
		return nil, err
	}
	habits, err := s.store.ListHabits(ctx, userID, storage.HabitFilter{})
	if err != nil {
		return nil, err
	}

	export := &Export{
		ExportedAt: time.Now().UTC(),
		Journal:    entries,
		Tasks:      tasks,
		Goals:      goals,
		Habits:     habits,
	}
	if export.Journal == nil {
		export.Journal = []models.JournalEntry{}
	}
	if export.Tasks == nil {
		export.Tasks = []models.Task{}
	}
	if export.Goals == nil {
		export.Goals = []models.Goal{}
	}
	if export.Habits == nil {
		export.Habits = []models.Habit{}
	}
	return export, nil
}

// ExportCSV flattens the user's journal into a CSV table with columns
// date, mood_score, transcription. Entries without a mood leave the field
// empty.
func (s *Service) ExportCSV(ctx context.Context, userID string) ([]byte, error) {
	entries, err := s.store.ListEntries(ctx, userID, storage.JournalFilter{})
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(csvHeader)
	for _, e := range entries {
		mood := ""
		if e.MoodScore != nil {
			mood = strconv.Itoa(*e.MoodScore)
		}
		sb.WriteString(escapeCSV(e.CreatedAt.UTC().Format(time.RFC3339)))
		sb.WriteByte(',')
		sb.WriteString(mood)
		sb.WriteByte(',')
		sb.WriteString(escapeCSV(e.Transcription))
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// escapeCSV escapes a string for CSV format: fields containing a comma,
// quote, or line break are wrapped in quotes with internal quotes doubled.
func escapeCSV(s string) string {
	needsQuotes := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuotes = true
			break
		}
	}
	if !needsQuotes {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
