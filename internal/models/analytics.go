// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

// This file contains the derived payloads produced by the analytics
// aggregator: wellness stats, mood trend series, insights, the dashboard
// composite, and the export bundle.

package models

import (
	"time"
)

// WellnessStats summarizes a user's journaling activity.
//
// TotalSessions counts genuine journal entries only; CompletedTasks counts
// synthetic task-completion entries (see TaskCompletedPrefix). AverageMood is
// the arithmetic mean over genuine entries with a non-nil mood, 0 when none
// exist. Streak is the number of consecutive UTC calendar days, walking
// backward from today, with at least one genuine entry.
type WellnessStats struct {
	TotalSessions  int     `json:"totalSessions"`
	CompletedTasks int     `json:"completedTasks"`
	AverageMood    float64 `json:"averageMood"`
	Streak         int     `json:"streak"`
}

// MoodPoint is one day in a mood trend series. Mood is the day's mean score
// over genuine entries, nil when the day has none; HasEntry is always
// consistent with Mood being non-nil.
type MoodPoint struct {
	Date     string   `json:"date"`
	Mood     *float64 `json:"mood"`
	HasEntry bool     `json:"hasEntry"`
}

// MoodSummary is the all-time aggregate over genuine entries with a mood.
type MoodSummary struct {
	Average float64 `json:"average"`
	Max     int     `json:"max"`
	Min     int     `json:"min"`
	Count   int     `json:"count"`
}

// MoodTrend is the response for the mood analytics endpoint: one point per
// calendar day for the requested trailing window (weekly = 7, monthly = 30),
// ordered oldest to newest, plus the all-time summary.
type MoodTrend struct {
	Period  string      `json:"period"`
	Points  []MoodPoint `json:"points"`
	Summary MoodSummary `json:"summary"`
}

// InsightType classifies a generated insight for client presentation.
type InsightType string

// Insight types emitted by the rule table.
const (
	InsightPositive    InsightType = "positive"
	InsightSuggestion  InsightType = "suggestion"
	InsightAchievement InsightType = "achievement"
	InsightReminder    InsightType = "reminder"
	InsightProgress    InsightType = "progress"
	InsightWarning     InsightType = "warning"
	InsightCorrelation InsightType = "correlation"
)

// Insight is one rule-generated observation shown on the dashboard. The
// generator is deterministic: identical inputs produce identical insight
// lists, truncated to four entries.
type Insight struct {
	Type    InsightType `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// HabitSummary reports today's habit state for the dashboard.
type HabitSummary struct {
	Active         int `json:"active"`
	CompletedToday int `json:"completedToday"`
}

// DashboardData is the single aggregate read backing the dashboard view.
// RecentEntries holds genuine entries only, newest first, capped at five.
type DashboardData struct {
	Stats         WellnessStats  `json:"stats"`
	RecentEntries []JournalEntry `json:"recentEntries"`
	UpcomingTasks []Task         `json:"upcomingTasks"`
	Insights      []Insight      `json:"insights"`
	Habits        HabitSummary   `json:"habits"`
}

// ExportBundle is the full denormalized dump of a user's four collections,
// returned by the JSON export format.
type ExportBundle struct {
	ExportedAt time.Time      `json:"exportedAt"`
	Journal    []JournalEntry `json:"journal"`
	Tasks      []Task         `json:"tasks"`
	Goals      []Goal         `json:"goals"`
	Habits     []Habit        `json:"habits"`
}
