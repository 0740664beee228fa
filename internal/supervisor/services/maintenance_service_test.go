// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/wellspring/internal/storage"
)

// maintainableStore decorates a Store with a counting RunMaintenance, the
// way the Badger backend implements storage.Maintainer.
type maintainableStore struct {
	storage.Store
	runs atomic.Int32
	err  error
}

func (m *maintainableStore) RunMaintenance() error {
	m.runs.Add(1)
	return m.err
}

func TestStorageMaintenanceService_Interface(t *testing.T) {
	var _ suture.Service = (*StorageMaintenanceService)(nil)
}

func TestNewStorageMaintenanceService(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()

	svc := NewStorageMaintenanceService(store, time.Minute)
	if svc.interval != time.Minute {
		t.Errorf("expected interval 1m, got %v", svc.interval)
	}
	if svc.String() != "storage-maintenance" {
		t.Errorf("expected name 'storage-maintenance', got %q", svc.String())
	}

	// Non-positive intervals fall back to the default
	svc = NewStorageMaintenanceService(store, 0)
	if svc.interval != defaultMaintenanceInterval {
		t.Errorf("expected default interval, got %v", svc.interval)
	}
}

func TestStorageMaintenanceService_Serve(t *testing.T) {
	t.Run("parks on non-maintainable store until shutdown", func(t *testing.T) {
		store := storage.NewMemoryStore()
		defer store.Close()

		svc := NewStorageMaintenanceService(store, time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
		case <-time.After(time.Second):
			t.Error("Serve did not return after context cancellation")
		}
	})

	t.Run("runs maintenance passes on interval", func(t *testing.T) {
		store := &maintainableStore{Store: storage.NewMemoryStore()}
		svc := NewStorageMaintenanceService(store, 5*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		deadline := time.Now().Add(time.Second)
		for store.runs.Load() < 2 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		cancel()
		<-errCh

		if store.runs.Load() < 2 {
			t.Errorf("expected at least 2 maintenance runs, got %d", store.runs.Load())
		}
	})

	t.Run("failed pass does not stop the service", func(t *testing.T) {
		store := &maintainableStore{
			Store: storage.NewMemoryStore(),
			err:   errors.New("value log gc failed"),
		}
		svc := NewStorageMaintenanceService(store, 5*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		deadline := time.Now().Add(time.Second)
		for store.runs.Load() < 3 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		cancel()

		select {
		case err := <-errCh:
			// Only the shutdown cause should surface, never the pass error
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
		case <-time.After(time.Second):
			t.Error("Serve did not return after context cancellation")
		}

		if store.runs.Load() < 3 {
			t.Errorf("expected the ticker to keep firing past failures, got %d runs", store.runs.Load())
		}
	})
}
