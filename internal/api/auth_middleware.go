// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tomtom215/wellspring/internal/auth"
	"github.com/tomtom215/wellspring/internal/metrics"
)

type contextKey string

// userIDContextKey carries the authenticated user's ID through the request
// context. Set only by Authenticate, read via UserIDFromContext.
const userIDContextKey contextKey = "user-id"

// ContextWithUserID returns a context carrying the authenticated user ID.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext returns the authenticated user ID, empty when the
// request never passed the Authenticate middleware.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDContextKey).(string); ok {
		return id
	}
	return ""
}

// Authenticate enforces bearer-token authentication. Valid tokens put the
// user ID into the request context; everything else gets a 401 envelope,
// a token rejection metric, and a security log line.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearerToken(r)
		if err != nil {
			h.rejectToken(w, r, err, "Authentication required")
			return
		}

		userID, err := h.tokens.Verify(token)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired, please log in again"
			}
			h.rejectToken(w, r, err, message)
			return
		}

		ctx := ContextWithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rejectToken records and answers a failed authentication. The response
// message never carries token internals.
func (h *Handler) rejectToken(w http.ResponseWriter, r *http.Request, err error, message string) {
	metrics.RecordTokenRejection()
	h.security.LogTokenRejected(clientIP(r), r.URL.Path, err.Error())
	respondError(w, http.StatusUnauthorized, codeAuthentication, message, nil)
}

// extractBearerToken pulls the token from the Authorization header, falling
// back to the token cookie for browser clients.
func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		cookie, err := r.Cookie("token")
		if err != nil {
			return "", fmt.Errorf("missing token")
		}
		return cookie.Value, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("invalid authorization header")
	}

	return parts[1], nil
}
