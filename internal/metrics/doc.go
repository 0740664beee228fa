// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus
client library, exposing metrics for monitoring performance, errors, and system health.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Authentication outcomes and token rejections
  - Storage backend selection and BadgerDB maintenance
  - Journal, task, goal, and habit activity
  - AI upstream health, fallback rates, and circuit breaker state
  - Analytics cache hit/miss rates

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Authentication Metrics:
  - auth_attempts_total: Register and login outcomes (counter)
    Labels: operation, result
  - auth_token_rejections_total: Requests turned away by token verification (counter)

Storage Metrics:
  - storage_backend_active: Selected backend, 1 for active (gauge)
    Labels: backend (badger, memory)
  - storage_maintenance_runs_total: Maintenance cycles (counter)
  - storage_maintenance_errors_total: Failed maintenance cycles (counter)

Wellness Activity Metrics:
  - journal_entries_created_total: Entries created (counter)
    Labels: source (user, task)
  - tasks_completed_total: Task completions (counter)
  - habit_completions_total: Habit day completions (counter)
  - goals_completed_total: Goals marked completed (counter)

AI Metrics:
  - ai_upstream_requests_total: Upstream calls attempted (counter)
  - ai_upstream_errors_total: Failed upstream calls (counter)
  - ai_upstream_duration_seconds: Upstream latency (histogram)
  - ai_fallbacks_total: Analyses served by the deterministic fallback (counter)
    Labels: reason (disabled, rate_limited, breaker_open, upstream_error)
  - ai_speech_requests_total: Speech synthesis outcomes (counter)
    Labels: result (proxied, fallback)
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_state_transitions_total: State transitions (counter)
    Labels: name, from_state, to_state

Cache Metrics:
  - cache_hits_total, cache_misses_total, cache_evictions_total (counters)
    Labels: cache_type
  - cache_entries: Current entry count (gauge)
    Labels: cache_type

# Usage Example

Basic setup in main.go:

	import (
	    "github.com/tomtom215/wellspring/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	func main() {
	    http.Handle("/metrics", promhttp.Handler())

	    metrics.SetStorageBackend("badger")
	    metrics.RecordAPIRequest("GET", "/api/v1/tasks", 200, 23*time.Millisecond)
	    metrics.RecordAIFallback("disabled")
	}

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally.

# Cardinality Management

To prevent high cardinality issues:

  - Endpoint labels use route patterns, never raw paths with IDs
  - Fallback reasons and breaker names are fixed constants
  - User-specific labels are avoided everywhere

# See Also

  - internal/middleware: HTTP middleware with metrics integration
  - internal/ai: AI upstream and fallback metrics recording
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics
