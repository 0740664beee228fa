// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

// Package storage provides the persistence layer for Wellspring.
//
// One Store interface, two implementations, selected exactly once at startup
// by the factory and injected everywhere. Business logic never asks which
// backend it is talking to.
//
//   - BadgerStore: durable embedded document store (BadgerDB). Data survives
//     restarts. Entity IDs are UUIDs.
//   - MemoryStore: mutex-guarded maps. Data is lost on restart. Entity IDs
//     are per-entity monotonic counters rendered "<entity>-<n>" ("task-3"),
//     so an ID's provenance is visible in logs and tests.
//
// # Factory
//
//	store := storage.Open(cfg.Storage)
//	defer store.Close()
//
// With backend "badger" the factory attempts to open the durable store within
// a bounded timeout; on failure it logs a warning and falls back to the
// memory store so the process keeps serving. With backend "memory" the
// durable store is never touched. Store.Kind() reports which backend won.
//
// # Contract
//
//   - Every read and mutation of user-owned entities takes the owning user
//     ID; cross-user access is impossible by construction.
//   - Unknown or malformed IDs yield ErrNotFound, never a panic or a format
//     error.
//   - Duplicate registration email yields ErrDuplicateEmail. Emails are
//     stored and matched lowercased.
//   - List operations take closed, typed filters with a single-key sort.
//     Both backends share the same in-process filter/sort helpers, so the
//     observable contract is identical.
//   - Returned entities are detached copies; mutating them never corrupts
//     store state.
//
// # Concurrency
//
// Both implementations are safe for concurrent use. Read-modify-write flows
// in the domain layer (task completion, habit completion) are intentionally
// not serialized across calls; last write wins.
package storage
