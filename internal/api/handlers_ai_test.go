// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"net/http"
	"testing"
)

// The test server runs with no AI upstream configured, so every analysis
// below is served by the deterministic fallback.

func TestAnalyzePersistsJournalEntry(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "analyze@example.com")

	rec := ts.do(t, http.MethodPost, "/api/v1/ai/analyze", token,
		map[string]string{"transcription": "Grateful for a calm morning walk"})
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	env := decodeEnvelope(t, rec)
	analysis := subObject(t, env, "analysis")
	if summary, _ := analysis["summary"].(string); summary == "" {
		t.Error("analysis summary empty")
	}
	mood, ok := analysis["moodScore"].(float64)
	if !ok || mood < 1 || mood > 10 {
		t.Errorf("moodScore = %v, want 1-10", analysis["moodScore"])
	}
	if suggestions, ok := analysis["suggestions"].([]interface{}); !ok || len(suggestions) == 0 {
		t.Errorf("suggestions = %v, want non-empty", analysis["suggestions"])
	}

	entry := subObject(t, env, "entry")
	if id, _ := entry["id"].(string); id == "" {
		t.Error("entry id missing")
	}
	if entry["transcription"] != "Grateful for a calm morning walk" {
		t.Errorf("entry transcription = %v", entry["transcription"])
	}
	if entry["moodScore"] != mood {
		t.Errorf("entry moodScore = %v, want %v", entry["moodScore"], mood)
	}

	rec = ts.do(t, http.MethodGet, "/api/v1/journal/", token, nil)
	entries := subList(t, decodeEnvelope(t, rec), "entries")
	if len(entries) != 1 {
		t.Fatalf("journal entries = %d, want 1", len(entries))
	}
}

func TestAnalyzeMoodFollowsSentiment(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "sentiment@example.com")

	moodFor := func(text string) float64 {
		t.Helper()
		rec := ts.do(t, http.MethodPost, "/api/v1/ai/analyze", token,
			map[string]string{"transcription": text})
		if rec.Code != http.StatusOK {
			t.Fatalf("analyze = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
		}
		analysis := subObject(t, decodeEnvelope(t, rec), "analysis")
		mood, _ := analysis["moodScore"].(float64)
		return mood
	}

	up := moodFor("Happy and grateful, today was a good day")
	down := moodFor("Exhausted and anxious, everything feels hopeless")
	if up <= down {
		t.Errorf("positive mood %v not above negative mood %v", up, down)
	}
}

func TestAnalyzeValidation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "analyzeval@example.com")

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing transcription", map[string]string{}},
		{"whitespace transcription", map[string]string{"transcription": "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/v1/ai/analyze", token, tt.body)
			assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
		})
	}
}

func TestSpeakFallbackWithoutUpstream(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "speak@example.com")

	rec := ts.do(t, http.MethodPost, "/api/v1/ai/speak", token,
		map[string]string{"text": "You showed up for yourself today"})
	if rec.Code != http.StatusOK {
		t.Fatalf("speak = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if fallback, _ := dataMap(t, decodeEnvelope(t, rec))["fallback"].(bool); !fallback {
		t.Error("expected fallback signal without a TTS upstream")
	}
}

func TestSpeakValidation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "speakval@example.com")

	rec := ts.do(t, http.MethodPost, "/api/v1/ai/speak", token, map[string]string{})
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}
