// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"net/http"

	"github.com/tomtom215/wellspring/internal/metrics"
	"github.com/tomtom215/wellspring/internal/models"
)

// Register handles account creation requests. A successful registration
// returns 201 with a signed token and the public user record.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	resp, err := h.auth.Register(r.Context(), req)
	if err != nil {
		metrics.RecordAuthAttempt("register", false)
		h.security.LogRegister("", req.Email, clientIP(r), false, err.Error())
		h.respondDomainError(w, r, err)
		return
	}

	metrics.RecordAuthAttempt("register", true)
	h.security.LogRegister(resp.User.ID, resp.User.Email, clientIP(r), true, "")
	respondSuccess(w, http.StatusCreated, resp)
}

// Login handles credential authentication. Failures are answered with one
// generic message regardless of cause.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	resp, err := h.auth.Login(r.Context(), req)
	if err != nil {
		metrics.RecordAuthAttempt("login", false)
		h.security.LogLoginFailure(req.Email, clientIP(r), r.UserAgent(), err.Error())
		h.respondDomainError(w, r, err)
		return
	}

	metrics.RecordAuthAttempt("login", true)
	h.security.LogLoginSuccess(resp.User.ID, resp.User.Email, clientIP(r), r.UserAgent())
	respondSuccess(w, http.StatusOK, resp)
}

// Me returns the authenticated user's public record.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	user, err := h.auth.CurrentUser(r.Context(), userID)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"user": user})
}
