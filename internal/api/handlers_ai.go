// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/wellspring/internal/ai"
	"github.com/tomtom215/wellspring/internal/logging"
	"github.com/tomtom215/wellspring/internal/models"
)

type analyzeRequest struct {
	Transcription string `json:"transcription" validate:"required"`
}

// analyzeResponse pairs the analysis with the journal entry it was
// persisted into.
type analyzeResponse struct {
	Analysis ai.Analysis          `json:"analysis"`
	Entry    *models.JournalEntry `json:"entry"`
}

// Analyze handles journal analysis requests. The transcription is analyzed
// (upstream or deterministic fallback, never an error) and persisted as a
// genuine journal entry, so this endpoint answers 200 for any valid input.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	userID := UserIDFromContext(r.Context())
	analysis := h.ai.Analyze(r.Context(), req.Transcription)

	entry, err := h.wellness.RecordEntry(r.Context(), userID, req.Transcription, analysis.Payload(), analysis.MoodScore)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	h.invalidateUser(userID)
	respondSuccess(w, http.StatusOK, analyzeResponse{
		Analysis: analysis,
		Entry:    entry,
	})
}

type speakRequest struct {
	Text string `json:"text" validate:"required"`
}

// Speak handles speech synthesis requests. The response is either raw audio
// bytes from the TTS upstream or a JSON fallback signal telling the client
// to synthesize locally; audio cannot be fabricated the way analysis can.
func (h *Handler) Speak(w http.ResponseWriter, r *http.Request) {
	var req speakRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	result := h.ai.Speak(r.Context(), req.Text)
	if result.Fallback {
		respondSuccess(w, http.StatusOK, map[string]any{"fallback": true})
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Audio)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Audio); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write audio response")
	}
}
