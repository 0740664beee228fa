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

// taskCreateRequest is the payload for POST /api/v1/tasks.
type taskCreateRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	DueDate     *time.Time      `json:"dueDate"`
	Priority    models.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	GoalID      string          `json:"goalId"`
}

// taskUpdateRequest is the payload for PUT /api/v1/tasks/{id}. Absent
// fields leave the stored value untouched.
type taskUpdateRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	DueDate     *time.Time       `json:"dueDate"`
	Priority    *models.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Completed   *bool            `json:"completed"`
	GoalID      *string          `json:"goalId"`
}

func (req taskUpdateRequest) patch() models.TaskPatch {
	return models.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Completed:   req.Completed,
		GoalID:      req.GoalID,
	}
}

// TaskList handles GET /api/v1/tasks.
// Returns all of the authenticated user's tasks, newest first.
func (h *Handler) TaskList(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	tasks, err := h.wellness.ListTasks(r.Context(), userID)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"tasks": tasks})
}

// TaskCreate handles POST /api/v1/tasks.
func (h *Handler) TaskCreate(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var req taskCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, req) {
		return
	}

	task, err := h.wellness.CreateTask(r.Context(), userID, models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		GoalID:      req.GoalID,
	})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.invalidateUser(userID)
	respondSuccess(w, http.StatusCreated, map[string]any{"task": task})
}

// TaskUpdate handles PUT /api/v1/tasks/{id}.
// Setting completed from false to true stamps the completion time and
// records a synthetic journal entry on the mood timeline.
func (h *Handler) TaskUpdate(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	var req taskUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, req) {
		return
	}

	task, err := h.wellness.UpdateTask(r.Context(), userID, taskID, req.patch())
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.invalidateUser(userID)
	respondSuccess(w, http.StatusOK, map[string]any{"task": task})
}

// TaskDelete handles DELETE /api/v1/tasks/{id}.
func (h *Handler) TaskDelete(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	taskID := chi.URLParam(r, "id")

	if err := h.wellness.DeleteTask(r.Context(), userID, taskID); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.invalidateUser(userID)
	respondSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}
