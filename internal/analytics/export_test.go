// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package analytics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/wellspring/internal/models"
)

func TestExportJSON(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "export@example.com")
	ctx := context.Background()
	now := time.Now().UTC()

	entries := []models.JournalEntry{
		genuineEntry(0, moodPtr(7), now),
		syntheticEntry(0, now),
	}
	for i := range entries {
		entries[i].UserID = user.ID
		if err := store.CreateEntry(ctx, &entries[i]); err != nil {
			t.Fatalf("CreateEntry error: %v", err)
		}
	}
	mustTask(t, store, &models.Task{UserID: user.ID, Title: "pack bags"})
	if err := store.CreateGoal(ctx, &models.Goal{UserID: user.ID, Title: "run 5k", Status: models.GoalActive}); err != nil {
		t.Fatalf("CreateGoal error: %v", err)
	}
	if err := store.CreateHabit(ctx, &models.Habit{UserID: user.ID, Name: "stretch", Active: true}); err != nil {
		t.Fatalf("CreateHabit error: %v", err)
	}

	export, err := svc.ExportJSON(ctx, user.ID)
	if err != nil {
		t.Fatalf("ExportJSON error: %v", err)
	}

	if export.ExportedAt.IsZero() {
		t.Error("exportedAt must be set")
	}
	// The dump is complete: synthetic entries are included
	if len(export.Journal) != 2 {
		t.Errorf("journal len = %d, want 2", len(export.Journal))
	}
	if len(export.Tasks) != 1 || len(export.Goals) != 1 || len(export.Habits) != 1 {
		t.Errorf("collections = %d/%d/%d, want 1/1/1",
			len(export.Tasks), len(export.Goals), len(export.Habits))
	}
}

func TestExportJSONEmptyUser(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "empty-export@example.com")

	export, err := svc.ExportJSON(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ExportJSON error: %v", err)
	}

	if export.Journal == nil || export.Tasks == nil || export.Goals == nil || export.Habits == nil {
		t.Error("collections must be empty, not null")
	}
	if len(export.Journal)+len(export.Tasks)+len(export.Goals)+len(export.Habits) != 0 {
		t.Errorf("expected empty collections, got %+v", export)
	}
}

func TestExportCSV(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "csv@example.com")
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	seed := []models.JournalEntry{
		{
			UserID:        user.ID,
			Transcription: "plain day",
			MoodScore:     moodPtr(7),
			CreatedAt:     now.Add(-2 * time.Hour),
		},
		{
			UserID:        user.ID,
			Transcription: `said "fine", then left`,
			CreatedAt:     now.Add(-1 * time.Hour),
		},
		{
			UserID:        user.ID,
			Transcription: "line one\nline two",
			MoodScore:     moodPtr(3),
			CreatedAt:     now,
		},
	}
	for i := range seed {
		if err := store.CreateEntry(ctx, &seed[i]); err != nil {
			t.Fatalf("CreateEntry error: %v", err)
		}
	}

	data, err := svc.ExportCSV(ctx, user.ID)
	if err != nil {
		t.Fatalf("ExportCSV error: %v", err)
	}

	// Newest first, matching the store's default order
	want := "date,mood_score,transcription\n" +
		seed[2].CreatedAt.UTC().Format(time.RFC3339) + ",3,\"line one\nline two\"\n" +
		seed[1].CreatedAt.UTC().Format(time.RFC3339) + ",,\"said \"\"fine\"\", then left\"\n" +
		seed[0].CreatedAt.UTC().Format(time.RFC3339) + ",7,plain day\n"

	if string(data) != want {
		t.Errorf("csv mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestExportCSVEmpty(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "empty-csv@example.com")

	data, err := svc.ExportCSV(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ExportCSV error: %v", err)
	}
	if string(data) != csvHeader {
		t.Errorf("csv = %q, want header only", data)
	}
}

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain string", "hello", "hello"},
		{"empty string", "", ""},
		{"embedded comma", "a,b", `"a,b"`},
		{"embedded quote", `say "hi"`, `"say ""hi"""`},
		{"embedded newline", "line\nbreak", "\"line\nbreak\""},
		{"carriage return", "cr\rend", "\"cr\rend\""},
		{"comma and quote", `1,"2"`, `"1,""2"""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeCSV(tt.input); got != tt.expected {
				t.Errorf("escapeCSV(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExportCSVExcludesNothing(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "full-csv@example.com")
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []models.JournalEntry{
		genuineEntry(0, moodPtr(5), now),
		syntheticEntry(0, now),
	}
	for i := range seed {
		seed[i].UserID = user.ID
		if err := store.CreateEntry(ctx, &seed[i]); err != nil {
			t.Fatalf("CreateEntry error: %v", err)
		}
	}

	data, err := svc.ExportCSV(ctx, user.ID)
	if err != nil {
		t.Fatalf("ExportCSV error: %v", err)
	}

	// The export is a full dump: synthetic rows appear too
	lines := strings.Count(string(data), "\n")
	if lines != 3 {
		t.Errorf("got %d lines, want header plus two rows", lines)
	}
	if !strings.Contains(string(data), models.TaskCompletedPrefix) {
		t.Error("synthetic entry must appear in the full dump")
	}
}
