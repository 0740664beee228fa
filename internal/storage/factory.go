// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package storage

import (
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/wellspring/internal/logging"
)

// Open selects and constructs the Store for the configured backend.
//
// The Badger backend is attempted within the given timeout; on failure or
// timeout the process falls back to the in-memory store with a warning
// rather than refusing to start. Callers can inspect Kind() to learn which
// backend they actually got.
func Open(backend, path string, timeout time.Duration) Store {
	if backend != KindBadger {
		logging.Info().Str("backend", KindMemory).Msg("Using in-memory store")
		return NewMemoryStore()
	}

	db, err := openBadger(path, timeout)
	if err != nil {
		logging.Warn().
			Err(err).
			Str("path", path).
			Msg("BadgerDB unavailable, falling back to in-memory store")
		return NewMemoryStore()
	}

	logging.Info().Str("backend", KindBadger).Str("path", path).Msg("BadgerDB store opened")
	return NewBadgerStore(db)
}

// openBadger opens the database with a bounded wait. Opening can stall
// replaying a large value log after an unclean shutdown, so the open runs
// in a goroutine and a late success is closed to release the directory
// lock.
func openBadger(path string, timeout time.Duration) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	type result struct {
		db  *badger.DB
		err error
	}
	done := make(chan result, 1)
	go func() {
		db, err := badger.Open(opts)
		done <- result{db: db, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("open badger db: %w", r.err)
		}
		return r.db, nil
	case <-time.After(timeout):
		go func() {
			if r := <-done; r.db != nil {
				_ = r.db.Close()
			}
		}()
		return nil, fmt.Errorf("open badger db: timed out after %s", timeout)
	}
}
