// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package wellness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/wellspring/internal/models"
	"github.com/tomtom215/wellspring/internal/storage"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func syntheticEntries(t *testing.T, store storage.Store, userID string) []models.JournalEntry {
	t.Helper()
	synthetic := true
	entries, err := store.ListEntries(context.Background(), userID, storage.JournalFilter{Synthetic: &synthetic})
	if err != nil {
		t.Fatalf("ListEntries error: %v", err)
	}
	return entries
}

func TestCreateTaskDefaults(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "tasks@example.com")

	task, err := svc.CreateTask(context.Background(), user.ID, models.Task{Title: "  water the plants  "})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}

	if task.Title != "water the plants" {
		t.Errorf("title = %q, want trimmed", task.Title)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want medium default", task.Priority)
	}
	if task.Completed || task.CompletedAt != nil {
		t.Error("new task must start incomplete")
	}
	if task.DueDate != nil {
		t.Error("due date must default to absent")
	}
	if task.UserID != user.ID {
		t.Errorf("userID = %q, want %q", task.UserID, user.ID)
	}
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "notitle@example.com")

	if _, err := svc.CreateTask(context.Background(), user.ID, models.Task{Title: "   "}); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("error = %v, want ErrTitleRequired", err)
	}
}

func TestCreateTaskForcesIncomplete(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "forced@example.com")

	stamp := time.Now().UTC()
	task, err := svc.CreateTask(context.Background(), user.ID, models.Task{
		Title:       "sneaky",
		Completed:   true,
		CompletedAt: &stamp,
	})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}
	if task.Completed || task.CompletedAt != nil {
		t.Error("creation must ignore submitted completion state")
	}
	if entries := syntheticEntries(t, store, user.ID); len(entries) != 0 {
		t.Errorf("creation wrote %d synthetic entries", len(entries))
	}
}

func TestCompleteTaskWritesSyntheticEntry(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "complete@example.com")
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, user.ID, models.Task{Title: "file taxes"})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}

	updated, err := svc.UpdateTask(ctx, user.ID, task.ID, models.TaskPatch{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("UpdateTask error: %v", err)
	}
	if !updated.Completed || updated.CompletedAt == nil {
		t.Fatal("completion must set the flag and stamp CompletedAt")
	}

	entries := syntheticEntries(t, store, user.ID)
	if len(entries) != 1 {
		t.Fatalf("got %d synthetic entries, want 1", len(entries))
	}

	entry := entries[0]
	if entry.Transcription != models.TaskCompletedPrefix+" file taxes" {
		t.Errorf("transcription = %q", entry.Transcription)
	}
	if entry.MoodScore == nil || *entry.MoodScore != completionMoodScore {
		t.Errorf("moodScore = %v, want %d", entry.MoodScore, completionMoodScore)
	}
	if entry.AIResponse["summary"] != "Completed task: file taxes" {
		t.Errorf("summary = %v", entry.AIResponse["summary"])
	}
	suggestions, ok := entry.AIResponse["suggestions"].([]string)
	if !ok || len(suggestions) != 0 {
		t.Errorf("suggestions = %v, want empty list", entry.AIResponse["suggestions"])
	}
}

func TestRecompleteTaskWritesNoSecondEntry(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "recomplete@example.com")
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, user.ID, models.Task{Title: "daily stretch"})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.UpdateTask(ctx, user.ID, task.ID, models.TaskPatch{Completed: boolPtr(true)}); err != nil {
			t.Fatalf("UpdateTask error: %v", err)
		}
	}

	if entries := syntheticEntries(t, store, user.ID); len(entries) != 1 {
		t.Errorf("got %d synthetic entries, want exactly 1", len(entries))
	}
}

func TestReopenThenCompleteWritesEntryPerTransition(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "reopen@example.com")
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, user.ID, models.Task{Title: "review draft"})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}

	for _, completed := range []bool{true, false, true} {
		updated, err := svc.UpdateTask(ctx, user.ID, task.ID, models.TaskPatch{Completed: boolPtr(completed)})
		if err != nil {
			t.Fatalf("UpdateTask error: %v", err)
		}
		if !completed && updated.CompletedAt != nil {
			t.Error("reopening must clear CompletedAt")
		}
	}

	// Two false-to-true transitions, two entries
	if entries := syntheticEntries(t, store, user.ID); len(entries) != 2 {
		t.Errorf("got %d synthetic entries, want 2", len(entries))
	}
}

func TestUpdateTaskOtherFieldsNoEntry(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "patch@example.com")
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, user.ID, models.Task{Title: "plain"})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}

	due := time.Now().UTC().Add(48 * time.Hour)
	priority := models.PriorityHigh
	updated, err := svc.UpdateTask(ctx, user.ID, task.ID, models.TaskPatch{
		Title:       strPtr("renamed"),
		Description: strPtr("with detail"),
		DueDate:     &due,
		Priority:    &priority,
	})
	if err != nil {
		t.Fatalf("UpdateTask error: %v", err)
	}

	if updated.Title != "renamed" || updated.Priority != models.PriorityHigh {
		t.Errorf("patch not applied: %+v", updated)
	}
	if entries := syntheticEntries(t, store, user.ID); len(entries) != 0 {
		t.Errorf("non-completion patch wrote %d synthetic entries", len(entries))
	}
}

func TestUpdateTaskRejectsEmptyTitle(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "emptypatch@example.com")
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, user.ID, models.Task{Title: "keep me"})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}

	if _, err := svc.UpdateTask(ctx, user.ID, task.ID, models.TaskPatch{Title: strPtr("  ")}); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("error = %v, want ErrTitleRequired", err)
	}
}

func TestUpdateTaskMissing(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "missing@example.com")

	if _, err := svc.UpdateTask(context.Background(), user.ID, "task-999", models.TaskPatch{Completed: boolPtr(true)}); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want storage.ErrNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "delete@example.com")
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, user.ID, models.Task{Title: "ephemeral"})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}

	if err := svc.DeleteTask(ctx, user.ID, task.ID); err != nil {
		t.Fatalf("DeleteTask error: %v", err)
	}
	if err := svc.DeleteTask(ctx, user.ID, task.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("second delete error = %v, want storage.ErrNotFound", err)
	}
}

func TestListTasksNewestFirst(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "order@example.com")
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i, title := range []string{"oldest", "middle", "newest"} {
		task := models.Task{Title: title, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if _, err := svc.CreateTask(ctx, user.ID, task); err != nil {
			t.Fatalf("CreateTask error: %v", err)
		}
	}

	tasks, err := svc.ListTasks(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListTasks error: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
	if tasks[0].Title != "newest" || tasks[2].Title != "oldest" {
		t.Errorf("order = [%s, %s, %s], want newest first", tasks[0].Title, tasks[1].Title, tasks[2].Title)
	}
}
