// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"net/http"
	"testing"
)

func createHabit(t *testing.T, ts *testServer, token string, body interface{}) map[string]interface{} {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/habits/", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create habit = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	return subObject(t, decodeEnvelope(t, rec), "habit")
}

func TestHabitCreateDefaults(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "habits@example.com")

	habit := createHabit(t, ts, token, map[string]string{"name": "Morning stretch"})

	if habit["frequency"] != "daily" {
		t.Errorf("frequency = %v, want daily default", habit["frequency"])
	}
	if habit["active"] != true {
		t.Errorf("active = %v, want true", habit["active"])
	}
	streak, ok := habit["streak"].(map[string]interface{})
	if !ok {
		t.Fatalf("streak = %v, want object", habit["streak"])
	}
	if streak["current"] != float64(0) || streak["longest"] != float64(0) {
		t.Errorf("streak = %v, want zeroes", streak)
	}
	completions, ok := habit["completions"].([]interface{})
	if !ok || len(completions) != 0 {
		t.Errorf("completions = %v, want empty array", habit["completions"])
	}
}

func TestHabitCreateValidation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "habitval@example.com")

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"description": "anonymous"}},
		{"bad frequency", map[string]interface{}{"name": "x", "frequency": "hourly"}},
		{"streak not settable", map[string]interface{}{"name": "x", "streak": map[string]int{"current": 99}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/v1/habits/", token, tt.body)
			assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
		})
	}
}

func TestHabitCompleteNoBody(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "habitdone@example.com")

	habit := createHabit(t, ts, token, map[string]string{"name": "Meditate"})
	id := habit["id"].(string)

	rec := ts.do(t, http.MethodPost, "/api/v1/habits/"+id+"/complete", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	completed := subObject(t, decodeEnvelope(t, rec), "habit")

	streak := completed["streak"].(map[string]interface{})
	if streak["current"] != float64(1) || streak["longest"] != float64(1) {
		t.Errorf("streak = %v, want current 1 longest 1", streak)
	}
	completions := completed["completions"].([]interface{})
	if len(completions) != 1 {
		t.Fatalf("completions = %d, want 1", len(completions))
	}
}

func TestHabitCompleteWithNotes(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "habitnotes@example.com")

	habit := createHabit(t, ts, token, map[string]string{"name": "Read"})
	id := habit["id"].(string)

	rec := ts.do(t, http.MethodPost, "/api/v1/habits/"+id+"/complete", token,
		map[string]string{"notes": "two chapters"})
	if rec.Code != http.StatusOK {
		t.Fatalf("complete = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	completed := subObject(t, decodeEnvelope(t, rec), "habit")
	completions := completed["completions"].([]interface{})
	if len(completions) != 1 {
		t.Fatalf("completions = %d, want 1", len(completions))
	}
	first := completions[0].(map[string]interface{})
	if first["notes"] != "two chapters" {
		t.Errorf("notes = %v, want recorded", first["notes"])
	}
}

func TestHabitCompleteSameDayConflict(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "habitdup@example.com")

	habit := createHabit(t, ts, token, map[string]string{"name": "Hydrate"})
	id := habit["id"].(string)

	rec := ts.do(t, http.MethodPost, "/api/v1/habits/"+id+"/complete", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("first complete = %d, want 200", rec.Code)
	}

	rec = ts.do(t, http.MethodPost, "/api/v1/habits/"+id+"/complete", token, nil)
	assertErrorCode(t, rec, http.StatusConflict, "CONFLICT_ERROR")

	// The conflict must not have grown the history.
	rec = ts.do(t, http.MethodGet, "/api/v1/habits/", token, nil)
	habits := subList(t, decodeEnvelope(t, rec), "habits")
	if len(habits) != 1 {
		t.Fatalf("habits = %d, want 1", len(habits))
	}
	stored := habits[0].(map[string]interface{})
	if got := len(stored["completions"].([]interface{})); got != 1 {
		t.Errorf("completions = %d, want still 1 after conflict", got)
	}
}

func TestHabitUpdateFields(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "habitupd@example.com")

	habit := createHabit(t, ts, token, map[string]interface{}{
		"name":       "Gym",
		"frequency":  "custom",
		"targetDays": []string{"monday", "thursday"},
	})
	id := habit["id"].(string)

	rec := ts.do(t, http.MethodPost, "/api/v1/habits/"+id+"/complete", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete = %d, want 200", rec.Code)
	}

	rec = ts.do(t, http.MethodPut, "/api/v1/habits/"+id, token, map[string]interface{}{
		"name":   "Strength training",
		"active": false,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	updated := subObject(t, decodeEnvelope(t, rec), "habit")

	if updated["name"] != "Strength training" {
		t.Errorf("name = %v", updated["name"])
	}
	if updated["active"] != false {
		t.Errorf("active = %v, want false", updated["active"])
	}
	if updated["frequency"] != "custom" {
		t.Errorf("frequency = %v, want untouched custom", updated["frequency"])
	}
	// Completion history survives a rename.
	streak := updated["streak"].(map[string]interface{})
	if streak["current"] != float64(1) {
		t.Errorf("streak.current = %v, want preserved 1", streak["current"])
	}
}

func TestHabitDelete(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "habitdel@example.com")

	habit := createHabit(t, ts, token, map[string]string{"name": "Doomed"})
	id := habit["id"].(string)

	rec := ts.do(t, http.MethodDelete, "/api/v1/habits/"+id, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete = %d, want 200", rec.Code)
	}
	if deleted, _ := dataMap(t, decodeEnvelope(t, rec))["deleted"].(bool); !deleted {
		t.Error("delete response missing deleted flag")
	}

	rec = ts.do(t, http.MethodDelete, "/api/v1/habits/"+id, token, nil)
	assertErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")
}
