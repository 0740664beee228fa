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

// CreateGoal persists a new goal for the user. Title is required; the
// category defaults to personal and every goal starts active with the
// submitted progress clamped to 0-100.
func (s *Service) CreateGoal(ctx context.Context, userID string, goal models.Goal) (*models.Goal, error) {
	goal.Title = strings.TrimSpace(goal.Title)
	if goal.Title == "" {
		return nil, ErrTitleRequired
	}

	goal.ID = ""
	goal.UserID = userID
	if goal.Category == "" {
		goal.Category = models.CategoryPersonal
	}
	goal.Status = models.GoalActive
	goal.CompletedAt = nil
	goal.Progress = clampProgress(goal.Progress)
	if goal.Milestones == nil {
		goal.Milestones = []models.Milestone{}
	}

	if err := s.store.CreateGoal(ctx, &goal); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().Str("goal_id", goal.ID).Msg("Goal created")
	return &goal, nil
}

// ListGoals returns all of the user's goals, newest first.
func (s *Service) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	return s.store.ListGoals(ctx, userID, storage.GoalFilter{})
}

// UpdateGoal applies the patch and returns the stored result. Progress is
// client-authoritative but clamped to 0-100; reaching the completed status
// stamps CompletedAt inside the store.
func (s *Service) UpdateGoal(ctx context.Context, userID, goalID string, patch models.GoalPatch) (*models.Goal, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		patch.Title = &title
	}
	if patch.Progress != nil {
		progress := clampProgress(*patch.Progress)
		patch.Progress = &progress
	}

	prev, err := s.store.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateGoal(ctx, userID, goalID, patch)
	if err != nil {
		return nil, err
	}

	if prev.Status != models.GoalCompleted && updated.Status == models.GoalCompleted {
		metrics.RecordGoalCompleted()
		logging.Ctx(ctx).Info().Str("goal_id", updated.ID).Msg("Goal completed")
	}
	return updated, nil
}

// DeleteGoal removes the user's goal. Missing or unowned goals surface as
// storage.ErrNotFound.
func (s *Service) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return s.store.DeleteGoal(ctx, userID, goalID)
}
