// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/wellspring/internal/models"
	"github.com/tomtom215/wellspring/internal/storage"
)

func newTestService(t *testing.T) (*Service, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return NewService(store), store
}

func mustUser(t *testing.T, store storage.Store, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", Name: "Test"}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func moodPtr(n int) *int { return &n }

// genuineEntry builds a journal entry created daysAgo days before now.
func genuineEntry(daysAgo int, mood *int, now time.Time) models.JournalEntry {
	return models.JournalEntry{
		Transcription: "a normal reflection",
		MoodScore:     mood,
		CreatedAt:     now.AddDate(0, 0, -daysAgo),
	}
}

// syntheticEntry builds a task-completion marker created daysAgo days
// before now.
func syntheticEntry(daysAgo int, now time.Time) models.JournalEntry {
	mood := 8
	return models.JournalEntry{
		Transcription: models.TaskCompletedPrefix + " finish report",
		MoodScore:     &mood,
		CreatedAt:     now.AddDate(0, 0, -daysAgo),
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		entries []models.JournalEntry
		want    Stats
	}{
		{
			name:    "no entries",
			entries: nil,
			want:    Stats{},
		},
		{
			name:    "single genuine entry today",
			entries: []models.JournalEntry{genuineEntry(0, moodPtr(7), now)},
			want:    Stats{TotalSessions: 1, AverageMood: 7.0, DayStreak: 1},
		},
		{
			name: "mood average rounds to one decimal",
			entries: []models.JournalEntry{
				genuineEntry(0, moodPtr(7), now),
				genuineEntry(0, moodPtr(7), now),
				genuineEntry(0, moodPtr(8), now),
			},
			want: Stats{TotalSessions: 3, AverageMood: 7.3, DayStreak: 1},
		},
		{
			name: "entries without mood count toward sessions only",
			entries: []models.JournalEntry{
				genuineEntry(0, nil, now),
				genuineEntry(0, moodPtr(6), now),
			},
			want: Stats{TotalSessions: 2, AverageMood: 6.0, DayStreak: 1},
		},
		{
			name: "synthetic entries count as completed tasks",
			entries: []models.JournalEntry{
				genuineEntry(0, moodPtr(7), now),
				syntheticEntry(0, now),
				syntheticEntry(1, now),
			},
			want: Stats{TotalSessions: 1, CompletedTasks: 2, AverageMood: 7.0, DayStreak: 1},
		},
		{
			name: "streak spans consecutive days and stops at a gap",
			entries: []models.JournalEntry{
				genuineEntry(0, moodPtr(6), now),
				genuineEntry(1, moodPtr(6), now),
				genuineEntry(2, moodPtr(6), now),
				genuineEntry(4, moodPtr(6), now),
			},
			want: Stats{TotalSessions: 4, AverageMood: 6.0, DayStreak: 3},
		},
		{
			name: "no entry today means no streak",
			entries: []models.JournalEntry{
				genuineEntry(1, moodPtr(6), now),
				genuineEntry(2, moodPtr(6), now),
			},
			want: Stats{TotalSessions: 2, AverageMood: 6.0, DayStreak: 0},
		},
		{
			name: "synthetic entries do not extend the streak",
			entries: []models.JournalEntry{
				genuineEntry(0, moodPtr(6), now),
				syntheticEntry(1, now),
				genuineEntry(2, moodPtr(6), now),
			},
			want: Stats{TotalSessions: 2, CompletedTasks: 1, AverageMood: 6.0, DayStreak: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeStats(tt.entries, now)
			if got != tt.want {
				t.Errorf("computeStats = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStatsFromStore(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "stats@example.com")
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []models.JournalEntry{
		genuineEntry(0, moodPtr(8), now),
		genuineEntry(1, moodPtr(6), now),
		syntheticEntry(1, now),
	}
	for i := range seed {
		seed[i].UserID = user.ID
		if err := store.CreateEntry(ctx, &seed[i]); err != nil {
			t.Fatalf("CreateEntry error: %v", err)
		}
	}

	stats, err := svc.Stats(ctx, user.ID)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}

	want := Stats{TotalSessions: 2, CompletedTasks: 1, AverageMood: 7.0, DayStreak: 2}
	if *stats != want {
		t.Errorf("Stats = %+v, want %+v", *stats, want)
	}
}

func TestStatsEmptyUser(t *testing.T) {
	svc, store := newTestService(t)
	user := mustUser(t, store, "fresh@example.com")

	stats, err := svc.Stats(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if *stats != (Stats{}) {
		t.Errorf("Stats = %+v, want zero value", *stats)
	}
}
