// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

/*
Package services provides suture.Service wrappers for Wellspring components.

This package adapts application components to the suture v4 supervision
model, translating their lifecycle patterns (ListenAndServe, periodic
maintenance) into suture's context-aware Serve pattern.

# Overview

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

The wrappers handle:
  - Lifecycle translation to the Serve pattern
  - Graceful shutdown via context cancellation
  - Error propagation for supervisor restart decisions
  - Service identification via fmt.Stringer

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Storage Maintenance (StorageMaintenanceService):
  - Runs the store's periodic maintenance pass (Badger value-log GC)
  - Feature-detects storage.Maintainer, so the in-memory backend is a no-op
  - Records pass outcomes in the Prometheus maintenance counters
*/
package services
