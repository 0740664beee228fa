// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"net/http"
	"testing"
)

func createGoal(t *testing.T, ts *testServer, token string, body interface{}) map[string]interface{} {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/goals/", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create goal = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	return subObject(t, decodeEnvelope(t, rec), "goal")
}

func TestGoalCreateDefaults(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "goals@example.com")

	goal := createGoal(t, ts, token, map[string]string{"title": "Run a half marathon"})

	if goal["status"] != "active" {
		t.Errorf("status = %v, want active", goal["status"])
	}
	if goal["category"] != "personal" {
		t.Errorf("category = %v, want personal default", goal["category"])
	}
	if goal["progress"] != float64(0) {
		t.Errorf("progress = %v, want 0", goal["progress"])
	}
	milestones, ok := goal["milestones"].([]interface{})
	if !ok || len(milestones) != 0 {
		t.Errorf("milestones = %v, want empty array", goal["milestones"])
	}
}

func TestGoalCreateWithMilestones(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "goalms@example.com")

	goal := createGoal(t, ts, token, map[string]interface{}{
		"title":    "Learn Spanish",
		"category": "learning",
		"milestones": []map[string]interface{}{
			{"title": "Finish beginner course"},
			{"title": "Hold a 10 minute conversation"},
		},
	})

	milestones, ok := goal["milestones"].([]interface{})
	if !ok || len(milestones) != 2 {
		t.Fatalf("milestones = %v, want 2", goal["milestones"])
	}
	first := milestones[0].(map[string]interface{})
	if first["title"] != "Finish beginner course" {
		t.Errorf("milestone title = %v", first["title"])
	}
	if first["completed"] != false {
		t.Errorf("milestone completed = %v, want false", first["completed"])
	}
}

func TestGoalCreateValidation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "goalval@example.com")

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing title", map[string]interface{}{"description": "no title"}},
		{"bad category", map[string]interface{}{"title": "x", "category": "sports"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/v1/goals/", token, tt.body)
			assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
		})
	}
}

func TestGoalProgressClamped(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "goalprog@example.com")

	goal := createGoal(t, ts, token, map[string]string{"title": "Save for a trip"})
	id := goal["id"].(string)

	rec := ts.do(t, http.MethodPut, "/api/v1/goals/"+id, token, map[string]interface{}{"progress": 250})
	if rec.Code != http.StatusOK {
		t.Fatalf("update = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	updated := subObject(t, decodeEnvelope(t, rec), "goal")
	if updated["progress"] != float64(100) {
		t.Errorf("progress = %v, want clamped 100", updated["progress"])
	}

	rec = ts.do(t, http.MethodPut, "/api/v1/goals/"+id, token, map[string]interface{}{"progress": -10})
	updated = subObject(t, decodeEnvelope(t, rec), "goal")
	if updated["progress"] != float64(0) {
		t.Errorf("progress = %v, want clamped 0", updated["progress"])
	}
}

func TestGoalCompletionStampsTime(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "goaldone@example.com")

	goal := createGoal(t, ts, token, map[string]string{"title": "Publish the blog"})
	id := goal["id"].(string)

	rec := ts.do(t, http.MethodPut, "/api/v1/goals/"+id, token, map[string]interface{}{
		"status":   "completed",
		"progress": 100,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("complete = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	updated := subObject(t, decodeEnvelope(t, rec), "goal")
	if updated["status"] != "completed" {
		t.Errorf("status = %v, want completed", updated["status"])
	}
	if updated["completedAt"] == nil {
		t.Error("completedAt not stamped")
	}

	// Reopening clears the stamp.
	rec = ts.do(t, http.MethodPut, "/api/v1/goals/"+id, token, map[string]interface{}{"status": "active"})
	updated = subObject(t, decodeEnvelope(t, rec), "goal")
	if updated["completedAt"] != nil {
		t.Errorf("completedAt = %v, want null after reopening", updated["completedAt"])
	}
}

func TestGoalMilestoneReplaceAndClear(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "goalclear@example.com")

	goal := createGoal(t, ts, token, map[string]interface{}{
		"title":      "Declutter",
		"milestones": []map[string]interface{}{{"title": "Garage"}},
	})
	id := goal["id"].(string)

	// Replace the list wholesale.
	rec := ts.do(t, http.MethodPut, "/api/v1/goals/"+id, token, map[string]interface{}{
		"milestones": []map[string]interface{}{
			{"title": "Garage", "completed": true},
			{"title": "Attic"},
		},
		"progress": 50,
	})
	updated := subObject(t, decodeEnvelope(t, rec), "goal")
	if got := len(updated["milestones"].([]interface{})); got != 2 {
		t.Fatalf("milestones = %d, want 2", got)
	}

	// An explicit empty list clears; an absent field leaves untouched.
	rec = ts.do(t, http.MethodPut, "/api/v1/goals/"+id, token, map[string]interface{}{
		"milestones": []map[string]interface{}{},
	})
	updated = subObject(t, decodeEnvelope(t, rec), "goal")
	if got := len(updated["milestones"].([]interface{})); got != 0 {
		t.Fatalf("milestones = %d, want 0 after clear", got)
	}

	rec = ts.do(t, http.MethodPut, "/api/v1/goals/"+id, token, map[string]interface{}{"description": "room by room"})
	updated = subObject(t, decodeEnvelope(t, rec), "goal")
	if got := len(updated["milestones"].([]interface{})); got != 0 {
		t.Errorf("milestones = %d, want list untouched by unrelated patch", got)
	}
}

func TestGoalDelete(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerUser(t, "goaldel@example.com")

	goal := createGoal(t, ts, token, map[string]string{"title": "Short lived"})
	id := goal["id"].(string)

	rec := ts.do(t, http.MethodDelete, "/api/v1/goals/"+id, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete = %d, want 200", rec.Code)
	}

	rec = ts.do(t, http.MethodPut, "/api/v1/goals/"+id, token, map[string]string{"title": "ghost"})
	assertErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")
}
