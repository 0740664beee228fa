// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package ai

// Mood scores live on a 1-10 scale. The baseline is the neutral midpoint
// assigned when nothing in the text moves the needle.
const (
	moodFloor    = 1
	moodCeiling  = 10
	moodBaseline = 5
)

// Analysis is the structured result of analyzing a journal transcription.
// Summary and Suggestions are always populated; the remaining fields are
// optional color the upstream may or may not provide.
type Analysis struct {
	Summary         string   `json:"summary"`
	Suggestions     []string `json:"suggestions"`
	MoodScore       int      `json:"moodScore"`
	Consolation     string   `json:"consolation,omitempty"`
	Motivation      string   `json:"motivation,omitempty"`
	KnowledgeNugget string   `json:"knowledgeNugget,omitempty"`
}

// Payload renders the analysis into the form stored on a journal entry.
// Optional fields are omitted when empty so stored entries stay compact.
func (a Analysis) Payload() map[string]any {
	suggestions := a.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	payload := map[string]any{
		"summary":     a.Summary,
		"suggestions": suggestions,
		"moodScore":   a.MoodScore,
	}
	if a.Consolation != "" {
		payload["consolation"] = a.Consolation
	}
	if a.Motivation != "" {
		payload["motivation"] = a.Motivation
	}
	if a.KnowledgeNugget != "" {
		payload["knowledgeNugget"] = a.KnowledgeNugget
	}
	return payload
}

// normalize repairs an upstream analysis in place. A missing mood score
// (zero value) becomes the neutral baseline, out-of-range scores are
// clamped, and the suggestions slice is never nil.
func (a *Analysis) normalize() {
	if a.MoodScore == 0 {
		a.MoodScore = moodBaseline
	}
	a.MoodScore = clampMood(a.MoodScore)
	if a.Suggestions == nil {
		a.Suggestions = []string{}
	}
}

func clampMood(score int) int {
	if score < moodFloor {
		return moodFloor
	}
	if score > moodCeiling {
		return moodCeiling
	}
	return score
}
