// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package analytics

import (
	"fmt"
)

// maxInsights caps the dashboard insight list.
const maxInsights = 4

// Insight categories rendered by the client.
const (
	InsightPositive    = "positive"
	InsightSuggestion  = "suggestion"
	InsightAchievement = "achievement"
	InsightReminder    = "reminder"
	InsightProgress    = "progress"
	InsightWarning     = "warning"
)

// Insight is one generated observation about the user's recent activity.
type Insight struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Snapshot carries every input the insight rules read, assembled from one
// instant's data so Insights is a pure function of a single value.
type Snapshot struct {
	TotalSessions        int
	CompletedTasks       int
	AverageMood          float64
	DayStreak            int
	ActiveHabits         int
	HabitsCompletedToday int
	ActiveGoals          int
	AverageGoalProgress  float64
	OverdueTasks         int
}

// insightRules is the fixed rule table, evaluated top to bottom. Order is
// part of the contract: the first maxInsights matches win.
var insightRules = []struct {
	match func(Snapshot) bool
	build func(Snapshot) Insight
}{
	{
		match: func(s Snapshot) bool { return s.AverageMood >= 7 },
		build: func(s Snapshot) Insight {
			return Insight{
				Type:    InsightPositive,
				Message: fmt.Sprintf("Your average mood is %.1f out of 10. Whatever you are doing, keep doing it.", s.AverageMood),
			}
		},
	},
	{
		match: func(s Snapshot) bool { return s.AverageMood > 0 && s.AverageMood < 5 },
		build: func(s Snapshot) Insight {
			return Insight{
				Type:    InsightSuggestion,
				Message: "Your mood has been low lately. A short walk, a call with a friend, or an earlier night can help.",
			}
		},
	},
	{
		match: func(s Snapshot) bool { return s.DayStreak >= 7 },
		build: func(s Snapshot) Insight {
			return Insight{
				Type:    InsightAchievement,
				Message: fmt.Sprintf("You have journaled %d days in a row. That consistency builds real self-awareness.", s.DayStreak),
			}
		},
	},
	{
		match: func(s Snapshot) bool { return s.DayStreak == 0 && s.TotalSessions > 0 },
		build: func(s Snapshot) Insight {
			return Insight{
				Type:    InsightReminder,
				Message: "You have not journaled today. A two-minute check-in keeps the habit alive.",
			}
		},
	},
	{
		match: func(s Snapshot) bool {
			return s.ActiveHabits > 0 && s.HabitsCompletedToday == s.ActiveHabits
		},
		build: func(s Snapshot) Insight {
			return Insight{
				Type:    InsightAchievement,
				Message: "Every active habit is checked off today. Strong work.",
			}
		},
	},
	{
		match: func(s Snapshot) bool {
			return s.ActiveHabits > 0 && s.HabitsCompletedToday > 0 && s.HabitsCompletedToday < s.ActiveHabits
		},
		build: func(s Snapshot) Insight {
			return Insight{
				Type:    InsightProgress,
				Message: fmt.Sprintf("%d of %d habits done today. A little momentum left to spend.", s.HabitsCompletedToday, s.ActiveHabits),
			}
		},
	},
	{
		match: func(s Snapshot) bool { return s.ActiveGoals > 0 && s.AverageGoalProgress >= 75 },
		build: func(s Snapshot) Insight {
			return Insight{
				Type:    InsightPositive,
				Message: fmt.Sprintf("Your goals are %.0f%% complete on average. The finish line is close.", s.AverageGoalProgress),
			}
		},
	},
	{
		match: func(s Snapshot) bool { return s.ActiveGoals > 0 && s.AverageGoalProgress < 25 },
		build: func(s Snapshot) Insight {
			return Insight{
				Type:    InsightSuggestion,
				Message: "Your goals are still early. Pick the smallest next milestone and knock it out.",
			}
		},
	},
	{
		match: func(s Snapshot) bool { return s.OverdueTasks > 0 },
		build: func(s Snapshot) Insight {
			message := fmt.Sprintf("%d tasks are past due. Reschedule them or clear them out.", s.OverdueTasks)
			if s.OverdueTasks == 1 {
				message = "One task is past due. Reschedule it or clear it out."
			}
			return Insight{Type: InsightWarning, Message: message}
		},
	},
	{
		match: func(s Snapshot) bool { return s.AverageMood >= 7 && s.CompletedTasks >= 5 },
		build: func(s Snapshot) Insight {
			return Insight{
				Type:    InsightPositive,
				Message: "High mood and steady task completion tend to reinforce each other. Keep the loop going.",
			}
		},
	},
}

// Insights evaluates the rule table against the snapshot and returns the
// first matches in declaration order, at most maxInsights. Identical
// snapshots always produce identical output.
func Insights(snap Snapshot) []Insight {
	insights := make([]Insight, 0, maxInsights)
	for _, rule := range insightRules {
		if !rule.match(snap) {
			continue
		}
		insights = append(insights, rule.build(snap))
		if len(insights) == maxInsights {
			break
		}
	}
	return insights
}
