// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package wellness

import (
	"context"
	"strings"

	"github.com/tomtom215/wellspring/internal/logging"
	"github.com/tomtom215/wellspring/internal/metrics"
	"github.com/tomtom215/wellspring/internal/models"
	"github.com/tomtom215/wellspring/internal/storage"
)

// RecordEntry creates a genuine journal entry carrying the analysis payload.
// The mood score is clamped to the 1-10 scale before storing.
func (s *Service) RecordEntry(ctx context.Context, userID, transcription string, analysis map[string]any, moodScore int) (*models.JournalEntry, error) {
	transcription = strings.TrimSpace(transcription)
	if transcription == "" {
		return nil, ErrTranscriptionRequired
	}

	mood := clampMood(moodScore)
	entry := &models.JournalEntry{
		UserID:        userID,
		Transcription: transcription,
		AIResponse:    analysis,
		MoodScore:     &mood,
	}
	if err := s.store.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	metrics.RecordJournalEntry("user")
	logging.Ctx(ctx).Debug().
		Str("entry_id", entry.ID).
		Int("mood_score", mood).
		Msg("Journal entry recorded")
	return entry, nil
}

// ListEntries returns the user's genuine journal entries, newest first.
// Synthetic task-completion records never appear here; limit <= 0 means
// no limit.
func (s *Service) ListEntries(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error) {
	synthetic := false
	return s.store.ListEntries(ctx, userID, storage.JournalFilter{
		Synthetic: &synthetic,
		Limit:     limit,
	})
}
