// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

// Package logging provides centralized zerolog-based structured logging for Wellspring.
//
// This package implements a unified logging layer using zerolog: zero-allocation
// structured JSON logging for production and human-readable console output for
// development. All application code logs through this package rather than using
// the standard library log or slog directly.
//
// # Quick Start
//
//	import "github.com/tomtom215/wellspring/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	// Log messages with structured fields
//	logging.Info().Str("user", userID).Msg("Journal entry created")
//	logging.Error().Err(err).Int("status", 500).Msg("Request failed")
//
//	// Context-aware logging (correlation and request IDs)
//	logging.Ctx(ctx).Info().Msg("Processing request")
//
// # Log Levels
//
// Supported log levels (from most to least verbose):
//
//	trace  - Very detailed diagnostic information
//	debug  - Detailed diagnostic information
//	info   - General operational information (default)
//	warn   - Warning conditions that should be addressed
//	error  - Error conditions requiring attention
//	fatal  - Fatal errors that terminate the program
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Use structured fields instead of string formatting:
//
//	logging.Info().Str("user", u).Int("count", n).Msg("tasks loaded")  // Correct
//	logging.Info().Msgf("loaded %d tasks for %s", n, u)                // Avoid
//
// # Component Loggers
//
// Create component-specific loggers with default fields:
//
//	storeLogger := logging.WithComponent("storage")
//	storeLogger.Info().Msg("Store opened")
//
// # slog Adapter
//
// NewSlogLogger returns an slog.Logger backed by zerolog for libraries that
// require slog (the suture supervisor's event hook):
//
//	slogger := logging.NewSlogLogger()
//	hook := (&sutureslog.Handler{Logger: slogger}).MustHook()
//
// # Security Logging
//
// Authentication events (registration, login, token validation) are logged
// through SecurityLogger, which masks user identifiers, emails, and tokens
// before they reach the log stream. Never log credentials or raw tokens.
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger is
// protected by sync.RWMutex for configuration changes.
//
// # Testing
//
// Create test loggers that capture output:
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logger.Info().Msg("test message")
//	output := buf.String()
package logging
