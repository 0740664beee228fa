// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package services

import (
	"context"
	"time"

	"github.com/tomtom215/wellspring/internal/logging"
	"github.com/tomtom215/wellspring/internal/metrics"
	"github.com/tomtom215/wellspring/internal/storage"
)

// defaultMaintenanceInterval is used when the caller passes a non-positive
// interval. Badger's own docs suggest value-log GC on the order of minutes.
const defaultMaintenanceInterval = 10 * time.Minute

// StorageMaintenanceService runs the store's periodic maintenance pass as a
// supervised service.
//
// The service feature-detects storage.Maintainer: the in-memory backend does
// not implement it, in which case Serve parks on the context so the
// supervisor does not restart-loop a permanent no-op.
//
// Example usage:
//
//	store := storage.Open(cfg.Storage.Backend, cfg.Storage.Path, cfg.Storage.OpenTimeout)
//	svc := services.NewStorageMaintenanceService(store, cfg.Storage.GCInterval)
//	tree.AddDataService(svc)
type StorageMaintenanceService struct {
	store    storage.Store
	interval time.Duration
	name     string
}

// NewStorageMaintenanceService creates a new storage maintenance service.
func NewStorageMaintenanceService(store storage.Store, interval time.Duration) *StorageMaintenanceService {
	if interval <= 0 {
		interval = defaultMaintenanceInterval
	}
	return &StorageMaintenanceService{
		store:    store,
		interval: interval,
		name:     "storage-maintenance",
	}
}

// Serve implements suture.Service.
//
// A failed pass is logged and counted but never returned: maintenance is
// best-effort and the next tick retries, so there is nothing for the
// supervisor to fix by restarting.
func (s *StorageMaintenanceService) Serve(ctx context.Context) error {
	maintainer, ok := s.store.(storage.Maintainer)
	if !ok {
		// Memory backend: nothing to maintain, park until shutdown
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := maintainer.RunMaintenance()
			metrics.RecordMaintenanceRun(err)
			if err != nil {
				logging.Warn().Err(err).Msg("Storage maintenance pass failed")
			} else {
				logging.Debug().Msg("Storage maintenance pass completed")
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// String implements fmt.Stringer for logging.
// Suture uses this to identify the service in log messages.
func (s *StorageMaintenanceService) String() string {
	return s.name
}
