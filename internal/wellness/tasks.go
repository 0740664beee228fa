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

// completionMoodScore is the mood attached to synthetic task-completion
// entries. Completing a task is a positive signal on the mood timeline.
const completionMoodScore = 8

// CreateTask persists a new task for the user. Title is required; the
// priority defaults to medium and the task always starts incomplete.
func (s *Service) CreateTask(ctx context.Context, userID string, task models.Task) (*models.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return nil, ErrTitleRequired
	}

	task.ID = ""
	task.UserID = userID
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	task.Completed = false
	task.CompletedAt = nil

	if err := s.store.CreateTask(ctx, &task); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().Str("task_id", task.ID).Msg("Task created")
	return &task, nil
}

// ListTasks returns all of the user's tasks, newest first.
func (s *Service) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	return s.store.ListTasks(ctx, userID, storage.TaskFilter{})
}

// UpdateTask applies the patch and returns the stored result. The
// false-to-true completion transition stamps CompletedAt (inside the store)
// and writes one synthetic journal entry; no other transition, including
// re-completing an already completed task, has side effects.
func (s *Service) UpdateTask(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		patch.Title = &title
	}

	prev, err := s.store.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateTask(ctx, userID, taskID, patch)
	if err != nil {
		return nil, err
	}

	if !prev.Completed && updated.Completed {
		s.recordTaskCompletion(ctx, userID, updated)
	}
	return updated, nil
}

// DeleteTask removes the user's task. Missing or unowned tasks surface as
// storage.ErrNotFound.
func (s *Service) DeleteTask(ctx context.Context, userID, taskID string) error {
	return s.store.DeleteTask(ctx, userID, taskID)
}

// recordTaskCompletion writes the synthetic journal entry for a completed
// task. The task update has already committed, so a failure here is logged
// and absorbed rather than failing the request.
func (s *Service) recordTaskCompletion(ctx context.Context, userID string, task *models.Task) {
	metrics.RecordTaskCompleted()

	mood := completionMoodScore
	entry := &models.JournalEntry{
		UserID:        userID,
		Transcription: models.TaskCompletedPrefix + " " + task.Title,
		AIResponse: map[string]any{
			"summary":     "Completed task: " + task.Title,
			"suggestions": []string{},
		},
		MoodScore: &mood,
	}
	if err := s.store.CreateEntry(ctx, entry); err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("task_id", task.ID).
			Msg("Failed to record task completion entry")
		return
	}

	metrics.RecordJournalEntry("task")
	logging.Ctx(ctx).Info().
		Str("task_id", task.ID).
		Str("entry_id", entry.ID).
		Msg("Task completed")
}
