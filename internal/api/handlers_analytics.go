// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/tomtom215/wellspring/internal/analytics"
	"github.com/tomtom215/wellspring/internal/cache"
	"github.com/tomtom215/wellspring/internal/logging"
)

// Dashboard handles GET /api/v1/dashboard.
// Returns the aggregate home-screen view: stats, recent genuine entries,
// upcoming tasks, insights, and active-habit summaries. The aggregate is
// cached per user until the next mutation.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	key := cache.Key(userID, "dashboard")
	if v, ok := h.cacheGet(key); ok {
		if dash, ok := v.(*analytics.Dashboard); ok {
			respondCached(w, dash)
			return
		}
	}

	dash, err := h.analytics.Dashboard(r.Context(), userID)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.cacheSet(key, dash)
	respondSuccess(w, http.StatusOK, dash)
}

// MoodTrend handles GET /api/v1/analytics/mood.
// The period query parameter selects the window: weekly (default, 7 days)
// or monthly (30 days). Anything else answers 400.
func (h *Handler) MoodTrend(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	period, err := analytics.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	key := cache.Key(userID, "mood", string(period))
	if v, ok := h.cacheGet(key); ok {
		if trend, ok := v.(*analytics.MoodTrend); ok {
			respondCached(w, trend)
			return
		}
	}

	trend, err := h.analytics.MoodTrend(r.Context(), userID, period)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.cacheSet(key, trend)
	respondSuccess(w, http.StatusOK, trend)
}

// Export handles GET /api/v1/analytics/export.
// The format query parameter selects json (default, full data dump) or
// csv (journal table). The response is a download attachment, never
// cached: exports must reflect the live store.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	filename := "wellspring-export-" + time.Now().UTC().Format("2006-01-02")

	switch format {
	case "json":
		export, err := h.analytics.ExportJSON(r.Context(), userID)
		if err != nil {
			h.respondDomainError(w, r, err)
			return
		}
		body, err := json.Marshal(export)
		if err != nil {
			h.respondDomainError(w, r, err)
			return
		}
		writeAttachment(w, r, body, "application/json", filename+".json")

	case "csv":
		body, err := h.analytics.ExportCSV(r.Context(), userID)
		if err != nil {
			h.respondDomainError(w, r, err)
			return
		}
		writeAttachment(w, r, body, "text/csv; charset=utf-8", filename+".csv")

	default:
		respondError(w, http.StatusBadRequest, codeValidation,
			"Invalid export format, expected json or csv", nil)
	}
}

// writeAttachment streams a download body with the given content type and
// filename. Exports are user data, so proxies must not store them.
func writeAttachment(w http.ResponseWriter, r *http.Request, body []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to write export body")
	}
}
