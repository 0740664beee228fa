// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package analytics

import (
	"context"
	"math"
	"time"

	"github.com/tomtom215/wellspring/internal/models"
	"github.com/tomtom215/wellspring/internal/storage"
)

// dateLayout keys mood buckets and streak days by UTC calendar date.
const dateLayout = "2006-01-02"

// Service computes derived analytics over a user's stored data.
type Service struct {
	store storage.Store
}

// NewService creates an analytics service reading from the given store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Stats summarizes a user's journaling activity.
type Stats struct {
	// TotalSessions counts genuine journal entries.
	TotalSessions int `json:"totalSessions"`

	// CompletedTasks counts synthetic task-completion entries.
	CompletedTasks int `json:"completedTasks"`

	// AverageMood is the mean of all genuine mood scores, rounded to one
	// decimal, 0 when no entry carries a mood.
	AverageMood float64 `json:"averageMood"`

	// DayStreak counts consecutive UTC calendar days with at least one
	// genuine entry, walking backward from today. No entry today means 0.
	DayStreak int `json:"dayStreak"`
}

// Stats returns the user's activity summary.
func (s *Service) Stats(ctx context.Context, userID string) (*Stats, error) {
	entries, err := s.store.ListEntries(ctx, userID, storage.JournalFilter{})
	if err != nil {
		return nil, err
	}
	stats := computeStats(entries, time.Now().UTC())
	return &stats, nil
}

// computeStats partitions entries into genuine and synthetic and derives
// the summary counters. now anchors the day-streak walk.
func computeStats(entries []models.JournalEntry, now time.Time) Stats {
	var stats Stats
	moodSum := 0
	moodCount := 0
	days := make(map[string]struct{})

	for _, e := range entries {
		if e.IsSynthetic() {
			stats.CompletedTasks++
			continue
		}
		stats.TotalSessions++
		if e.MoodScore != nil {
			moodSum += *e.MoodScore
			moodCount++
		}
		days[e.CreatedAt.UTC().Format(dateLayout)] = struct{}{}
	}

	if moodCount > 0 {
		stats.AverageMood = round1(float64(moodSum) / float64(moodCount))
	}

	day := now.UTC()
	for {
		if _, ok := days[day.Format(dateLayout)]; !ok {
			break
		}
		stats.DayStreak++
		day = day.AddDate(0, 0, -1)
	}

	return stats
}

// round1 rounds to one decimal place for stable display values.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
