// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"net/http"
)

// defaultJournalLimit caps unpaginated journal listings.
const defaultJournalLimit = 50

// JournalList returns the user's genuine journal entries, newest first.
// Synthetic task-completion records never appear here. The limit query
// parameter bounds the page size.
func (h *Handler) JournalList(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	limit := getIntParam(r, "limit", defaultJournalLimit)

	entries, err := h.wellness.ListEntries(r.Context(), userID, limit)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"entries": entries})
}
