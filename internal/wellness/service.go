// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package wellness

import (
	"errors"

	"github.com/tomtom215/wellspring/internal/storage"
)

// Domain sentinels. The API layer maps the first three to 400 responses
// and ErrHabitCompletedToday to 409.
var (
	ErrTitleRequired         = errors.New("title is required")
	ErrNameRequired          = errors.New("name is required")
	ErrTranscriptionRequired = errors.New("transcription is required")
	ErrHabitCompletedToday   = errors.New("habit already completed today")
)

// Service implements the wellness domain operations over a storage.Store.
// It is safe for concurrent use; all state lives in the store. Methods log
// through the request context so correlation IDs flow into every line.
type Service struct {
	store storage.Store
}

// NewService builds a Service over the given store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

func clampMood(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
