// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/wellspring/internal/analytics"
	"github.com/tomtom215/wellspring/internal/auth"
	"github.com/tomtom215/wellspring/internal/logging"
	"github.com/tomtom215/wellspring/internal/storage"
	"github.com/tomtom215/wellspring/internal/wellness"
)

// Error codes used in API responses. One code per status class keeps
// clients switching on code rather than parsing messages.
const (
	codeValidation     = "VALIDATION_ERROR"
	codeAuthentication = "AUTHENTICATION_ERROR"
	codeNotFound       = "NOT_FOUND"
	codeConflict       = "CONFLICT_ERROR"
	codeRateLimit      = "RATE_LIMIT_EXCEEDED"
	codeInternal       = "INTERNAL_ERROR"
)

// respondDomainError maps domain sentinel errors onto HTTP statuses and the
// error envelope. Anything unmapped is an internal error whose message is
// redacted outside development mode; the full error always reaches the log.
func (h *Handler) respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, wellness.ErrTitleRequired),
		errors.Is(err, wellness.ErrNameRequired),
		errors.Is(err, wellness.ErrTranscriptionRequired),
		errors.Is(err, analytics.ErrUnknownPeriod):
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)

	case errors.Is(err, auth.ErrInvalidCredentials):
		// Deliberately generic: unknown email and wrong password answer
		// identically so responses cannot enumerate accounts.
		respondError(w, http.StatusUnauthorized, codeAuthentication, "Invalid email or password", nil)

	case errors.Is(err, storage.ErrNotFound):
		respondError(w, http.StatusNotFound, codeNotFound, "Resource not found", nil)

	case errors.Is(err, storage.ErrDuplicateEmail):
		respondError(w, http.StatusConflict, codeConflict, "An account with this email already exists", nil)

	case errors.Is(err, wellness.ErrHabitCompletedToday):
		respondError(w, http.StatusConflict, codeConflict, err.Error(), nil)

	default:
		logging.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Unhandled error in API handler")

		message := "An internal error occurred"
		if h.development {
			message = err.Error()
		}
		respondError(w, http.StatusInternalServerError, codeInternal, message, nil)
	}
}
