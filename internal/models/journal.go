// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package models

import (
	"strings"
	"time"
)

// TaskCompletedPrefix marks synthetic journal entries written as a side
// effect of completing a task. Entries carrying this prefix are bookkeeping
// records, not genuine journal content: they are excluded from session
// counts, mood averages, streak computation, and recent-entry listings, and
// counted only toward the completed-tasks total.
const TaskCompletedPrefix = "TASK_COMPLETED:"

// JournalEntry represents one journaling session, either recorded by the
// user (voice or text, analyzed by the AI adapter) or synthesized by the
// task-completion flow.
//
// AIResponse holds the structured analysis payload as an opaque map; its
// shape is owned by the ai package (summary, suggestions, moodScore, and the
// optional consolation/motivation/knowledgeNugget strings). MoodScore is the
// 1-10 integer score, nil when the entry carries no scored mood.
//
// Entries are append-only: never updated and never deleted in normal flow.
type JournalEntry struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	Transcription string         `json:"transcription"`
	AIResponse    map[string]any `json:"aiResponse,omitempty"`
	MoodScore     *int           `json:"moodScore"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// IsSynthetic reports whether the entry is a task-completion bookkeeping
// record rather than genuine journal content.
func (e JournalEntry) IsSynthetic() bool {
	return strings.HasPrefix(e.Transcription, TaskCompletedPrefix)
}
