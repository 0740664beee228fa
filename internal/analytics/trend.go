// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/wellspring/internal/models"
	"github.com/tomtom215/wellspring/internal/storage"
)

// ErrUnknownPeriod is returned by ParsePeriod for anything other than
// "weekly" or "monthly".
var ErrUnknownPeriod = errors.New("unknown period")

// Period selects the trend window length.
type Period string

// Trend periods.
const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod maps the period query parameter to a Period. The empty string
// defaults to weekly.
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "", string(PeriodWeekly):
		return PeriodWeekly, nil
	case string(PeriodMonthly):
		return PeriodMonthly, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// Days returns the number of trailing calendar days the period covers,
// today included.
func (p Period) Days() int {
	if p == PeriodMonthly {
		return 30
	}
	return 7
}

// TrendPoint is one calendar day in the mood series.
type TrendPoint struct {
	// Date is the UTC calendar date, YYYY-MM-DD.
	Date string `json:"date"`

	// Mood is the mean of the day's mood scores rounded to one decimal,
	// null when no genuine entry that day carries a mood.
	Mood *float64 `json:"mood"`

	// HasEntry reports whether any genuine entry exists for the day,
	// regardless of mood.
	HasEntry bool `json:"hasEntry"`
}

// MoodSummary aggregates all genuine mood scores ever recorded, not just
// the requested window.
type MoodSummary struct {
	Average float64 `json:"average"`
	Max     int     `json:"max"`
	Min     int     `json:"min"`
	Count   int     `json:"count"`
}

// MoodTrend is the mood series for one period plus the all-time summary.
type MoodTrend struct {
	Period  Period       `json:"period"`
	Points  []TrendPoint `json:"points"`
	Summary MoodSummary  `json:"summary"`
}

// MoodTrend returns one point per calendar day over the period, oldest
// first and ending today.
func (s *Service) MoodTrend(ctx context.Context, userID string, period Period) (*MoodTrend, error) {
	genuine := false
	entries, err := s.store.ListEntries(ctx, userID, storage.JournalFilter{Synthetic: &genuine})
	if err != nil {
		return nil, err
	}
	return buildMoodTrend(entries, period, time.Now().UTC()), nil
}

// dayBucket accumulates one calendar day's entries while building a trend.
type dayBucket struct {
	entries   int
	moodSum   int
	moodCount int
}

// buildMoodTrend derives the series and summary from genuine entries. now
// is the newest day in the series.
func buildMoodTrend(entries []models.JournalEntry, period Period, now time.Time) *MoodTrend {
	byDay := make(map[string]*dayBucket)
	var summary MoodSummary

	for _, e := range entries {
		key := e.CreatedAt.UTC().Format(dateLayout)
		b := byDay[key]
		if b == nil {
			b = &dayBucket{}
			byDay[key] = b
		}
		b.entries++

		if e.MoodScore == nil {
			continue
		}
		mood := *e.MoodScore
		b.moodSum += mood
		b.moodCount++

		if summary.Count == 0 || mood > summary.Max {
			summary.Max = mood
		}
		if summary.Count == 0 || mood < summary.Min {
			summary.Min = mood
		}
		summary.Average += float64(mood)
		summary.Count++
	}

	if summary.Count > 0 {
		summary.Average = round1(summary.Average / float64(summary.Count))
	}

	days := period.Days()
	points := make([]TrendPoint, 0, days)
	start := now.UTC().AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format(dateLayout)
		point := TrendPoint{Date: key}
		if b, ok := byDay[key]; ok {
			point.HasEntry = b.entries > 0
			if b.moodCount > 0 {
				mean := round1(float64(b.moodSum) / float64(b.moodCount))
				point.Mood = &mean
			}
		}
		points = append(points, point)
	}

	return &MoodTrend{Period: period, Points: points, Summary: summary}
}
