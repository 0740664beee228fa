// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wellspring/internal/models"
)

// Health handles GET /api/v1/health.
// Reports overall status, the storage backend chosen at startup, and
// whether the AI upstream is configured and passing its breaker. A
// missing AI upstream never degrades health: the analyze path falls
// back to local analysis by contract.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, models.HealthStatus{
		Status:         "healthy",
		StorageBackend: h.store.Kind(),
		Version:        Version,
		AIAvailable:    h.ai.Available(),
		Uptime:         time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles GET /api/v1/health/live (Kubernetes-style liveness).
// Returns 200 whenever the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready (Kubernetes-style
// readiness). The store is opened before the listener starts, so a
// serving process is always ready; the payload still reports what it
// is serving with.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"ready_to_serve":  true,
		"storage_backend": h.store.Kind(),
		"ai_available":    h.ai.Available(),
		"uptime_seconds":  time.Since(h.startTime).Seconds(),
	})
}
