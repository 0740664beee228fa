// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/tomtom215/wellspring/internal/models"
)

// habitCreateRequest is the payload for POST /api/v1/habits.
type habitCreateRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Frequency   models.Frequency `json:"frequency" validate:"omitempty,oneof=daily weekly custom"`
	TargetDays  []string         `json:"targetDays"`
}

// habitUpdateRequest is the payload for PUT /api/v1/habits/{id}. Absent
// fields leave the stored value untouched. Completions and streaks are
// not patchable; they change only through the complete endpoint.
type habitUpdateRequest struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Frequency   *models.Frequency `json:"frequency" validate:"omitempty,oneof=daily weekly custom"`
	TargetDays  *[]string         `json:"targetDays"`
	Active      *bool             `json:"active"`
}

func (req habitUpdateRequest) patch() models.HabitPatch {
	return models.HabitPatch{
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		TargetDays:  req.TargetDays,
		Active:      req.Active,
	}
}

// habitCompleteRequest is the optional payload for POST
// /api/v1/habits/{id}/complete. An empty body records a completion
// without notes.
type habitCompleteRequest struct {
	Notes string `json:"notes"`
}

// HabitList handles GET /api/v1/habits.
// Returns all of the authenticated user's habits, newest first.
func (h *Handler) HabitList(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	habits, err := h.wellness.ListHabits(r.Context(), userID)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"habits": habits})
}

// HabitCreate handles POST /api/v1/habits.
func (h *Handler) HabitCreate(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var req habitCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, req) {
		return
	}

	habit, err := h.wellness.CreateHabit(r.Context(), userID, models.Habit{
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		TargetDays:  req.TargetDays,
	})
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.invalidateUser(userID)
	respondSuccess(w, http.StatusCreated, map[string]any{"habit": habit})
}

// HabitUpdate handles PUT /api/v1/habits/{id}.
func (h *Handler) HabitUpdate(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	habitID := chi.URLParam(r, "id")

	var req habitUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, req) {
		return
	}

	habit, err := h.wellness.UpdateHabit(r.Context(), userID, habitID, req.patch())
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.invalidateUser(userID)
	respondSuccess(w, http.StatusOK, map[string]any{"habit": habit})
}

// HabitDelete handles DELETE /api/v1/habits/{id}.
func (h *Handler) HabitDelete(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	habitID := chi.URLParam(r, "id")

	if err := h.wellness.DeleteHabit(r.Context(), userID, habitID); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.invalidateUser(userID)
	respondSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}

// HabitComplete handles POST /api/v1/habits/{id}/complete.
// Records today's completion and recomputes the streak. A second
// completion on the same UTC date answers 409. The body is optional;
// when present it may carry notes for the completion.
func (h *Handler) HabitComplete(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	habitID := chi.URLParam(r, "id")

	// The notes body is optional, so an empty body is not a decode error
	// here the way it is for the strict create and update payloads.
	var req habitCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, codeValidation, "Invalid request body", err)
		return
	}

	habit, err := h.wellness.CompleteHabit(r.Context(), userID, habitID, req.Notes)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.invalidateUser(userID)
	respondSuccess(w, http.StatusOK, map[string]any{"habit": habit})
}
