// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. It provides a consistent structure for both successful and
// error responses, with metadata for observability and caching.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"totalSessions": 12, "averageMood": 6.5},
//	  "metadata": {"timestamp": "2026-02-11T12:00:00Z"}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "title is required"},
//	  "metadata": {"timestamp": "2026-02-11T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata carries response metadata for observability. Cached marks
// responses served from the dashboard/analytics TTL cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the structured error payload embedded in error responses.
//
// Codes used by this application:
//   - VALIDATION_ERROR: missing or malformed input (400)
//   - AUTHENTICATION_ERROR: bad credentials or token (401)
//   - AUTHORIZATION_ERROR: valid identity, forbidden resource (403)
//   - CONFLICT_ERROR: duplicate registration or duplicate habit completion (409)
//   - NOT_FOUND: missing or unowned resource (404)
//   - UPSTREAM_ERROR: external AI/speech service failure surfaced to the
//     caller (speak path only; the analyze path degrades to a fallback)
//   - RATE_LIMIT_EXCEEDED: too many requests (429)
//   - INTERNAL_ERROR: unexpected failure, message redacted outside
//     development mode (500)
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthStatus is the full health report: overall status, the storage
// backend selected at startup, and whether the AI upstream is usable.
type HealthStatus struct {
	Status         string  `json:"status"`
	StorageBackend string  `json:"storage_backend"`
	Version        string  `json:"version"`
	AIAvailable    bool    `json:"ai_available"`
	Uptime         float64 `json:"uptime_seconds"`
}

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login: a signed bearer token and
// the public user record. The password hash never appears here; User excludes
// it from serialization.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
