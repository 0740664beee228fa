// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

/*
Package supervisor provides process supervision for Wellspring using suture v4.

This package implements a hierarchical supervisor tree that manages the
lifecycle of the long-running services in the application. It provides
Erlang/OTP-style supervision with automatic restart, failure isolation, and
graceful shutdown.

# Overview

The supervisor tree organizes services into two layers for failure isolation:

	RootSupervisor ("wellspring")
	├── DataSupervisor ("data-layer")
	│   └── StorageMaintenanceService (Badger value-log GC, when durable)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

This hierarchy ensures that a misbehaving maintenance pass never takes the
HTTP surface down with it: each layer restarts independently under the root.

# Key Features

Automatic Restart:
  - Crashed services are automatically restarted
  - Exponential backoff prevents restart storms
  - Configurable failure thresholds and decay rates

Graceful Shutdown:
  - Context cancellation propagates through the tree
  - Services get a bounded window to drain before being reported unstopped

# Usage

	slogLogger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewStorageMaintenanceService(store, 10*time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)

Supervision events are logged through the sutureslog handler, which bridges
to the application's zerolog output via logging.NewSlogLogger.
*/
package supervisor
