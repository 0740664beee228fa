// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wellspring/internal/models"
)

// goalCreateRequest is the payload for POST /api/v1/goals.
type goalCreateRequest struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	Category    models.GoalCategory `json:"category" validate:"omitempty,oneof=health career personal financial relationships learning other"`
	TargetDate  *time.Time          `json:"targetDate"`
	Milestones  []models.Milestone  `json:"milestones"`
}

// goalUpdateRequest is the payload for PUT /api/v1/goals/{id}. Absent
// fields leave the stored value untouched; an explicit empty milestone
// list clears the milestones.
type goalUpdateRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Category    *models.GoalCategory `json:"category" validate:"omitempty,oneof=health career personal financial relationships learning other"`
	TargetDate  *time.Time           `json:"targetDate"`
	Milestones  *[]models.Milestone  `json:"milestones"`
	Progress    *int                 `json:"progress"`
	Status      *models.GoalStatus   `json:"status" validate:"omitempty,oneof=active completed abandoned"`
}

func (req goalUpdateRequest) patch() models.GoalPatch {
	return models.GoalPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetDate:  req.TargetDate,
		Milestones:  req.Milestones,
		Progress:    req.Progress,
		Status:      req.Status,
	}
}

// GoalList handles GET /api/v1/goals.
// Returns all of the authenticated user's goals, newest first.
func (h *Handler) GoalList(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	goals, err := h.wellness.ListGoals(r.Context(), userID)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"goals": goals})
}

// GoalCreate handles POST /api/v1/goals.
func (h *Handler) GoalCreate(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var req goalCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, req) {
		return
	}

	goal, err := h.wellness.CreateGoal(r.Context(), userID, models.Goal{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetDate:  req.TargetDate,
		Milestones:  req.Milestones,
	})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.invalidateUser(userID)
	respondSuccess(w, http.StatusCreated, map[string]any{"goal": goal})
}

// GoalUpdate handles PUT /api/v1/goals/{id}.
// Progress is client-authoritative and clamped to 0-100 by the domain
// layer; transitioning status to completed stamps the completion time.
func (h *Handler) GoalUpdate(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	goalID := chi.URLParam(r, "id")

	var req goalUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, req) {
		return
	}

	goal, err := h.wellness.UpdateGoal(r.Context(), userID, goalID, req.patch())
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.invalidateUser(userID)
	respondSuccess(w, http.StatusOK, map[string]any{"goal": goal})
}

// GoalDelete handles DELETE /api/v1/goals/{id}.
func (h *Handler) GoalDelete(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	goalID := chi.URLParam(r, "id")

	if err := h.wellness.DeleteGoal(r.Context(), userID, goalID); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.invalidateUser(userID)
	respondSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}
