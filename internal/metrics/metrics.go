// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - API endpoint latency and throughput
// - Authentication outcomes
// - Storage backend selection and maintenance
// - Journal/task/goal/habit activity
// - AI upstream health and fallback rates
// - Analytics cache efficiency

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"operation", "result"}, // operation: "register", "login"; result: "success", "failure"
	)

	TokenRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_token_rejections_total",
			Help: "Total number of requests rejected for missing or invalid tokens",
		},
	)

	// Storage Metrics
	StorageBackendActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storage_backend_active",
			Help: "Active storage backend (1 for the backend in use, 0 otherwise)",
		},
		[]string{"backend"}, // "badger", "memory"
	)

	StorageMaintenanceRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storage_maintenance_runs_total",
			Help: "Total number of storage maintenance cycles",
		},
	)

	StorageMaintenanceErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storage_maintenance_errors_total",
			Help: "Total number of failed storage maintenance cycles",
		},
	)

	// Wellness Activity Metrics
	JournalEntriesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_entries_created_total",
			Help: "Total number of journal entries created",
		},
		[]string{"source"}, // "user", "task"
	)

	TasksCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_completed_total",
			Help: "Total number of task completions",
		},
	)

	HabitCompletions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "habit_completions_total",
			Help: "Total number of habit day completions",
		},
	)

	GoalsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "goals_completed_total",
			Help: "Total number of goals marked completed",
		},
	)

	// AI Upstream Metrics
	AIUpstreamRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ai_upstream_requests_total",
			Help: "Total number of requests attempted against the AI upstream",
		},
	)

	AIUpstreamErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ai_upstream_errors_total",
			Help: "Total number of failed AI upstream requests",
		},
	)

	AIUpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ai_upstream_duration_seconds",
			Help:    "Duration of AI upstream calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	AIFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_fallbacks_total",
			Help: "Total number of analyses served by the deterministic fallback",
		},
		[]string{"reason"}, // "disabled", "rate_limited", "breaker_open", "upstream_error"
	)

	AISpeechRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_speech_requests_total",
			Help: "Total number of speech synthesis requests",
		},
		[]string{"result"}, // "proxied", "fallback"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Cache Metrics (analytics/dashboard response cache)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry or invalidation)",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by a rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordAuthAttempt records a register or login outcome.
func RecordAuthAttempt(operation string, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	AuthAttempts.WithLabelValues(operation, result).Inc()
}

// RecordTokenRejection records a request turned away by token verification.
func RecordTokenRejection() {
	TokenRejections.Inc()
}

// SetStorageBackend marks which storage backend the process selected at
// startup. Exactly one backend label carries the value 1.
func SetStorageBackend(kind string) {
	for _, backend := range []string{"badger", "memory"} {
		value := 0.0
		if backend == kind {
			value = 1.0
		}
		StorageBackendActive.WithLabelValues(backend).Set(value)
	}
}

// RecordMaintenanceRun records one storage maintenance cycle.
func RecordMaintenanceRun(err error) {
	StorageMaintenanceRuns.Inc()
	if err != nil {
		StorageMaintenanceErrors.Inc()
	}
}

// RecordJournalEntry records a created journal entry. Source is "user" for
// entries posted through the API and "task" for synthetic completion entries.
func RecordJournalEntry(source string) {
	JournalEntriesCreated.WithLabelValues(source).Inc()
}

// RecordTaskCompleted records a task transitioning to completed.
func RecordTaskCompleted() {
	TasksCompleted.Inc()
}

// RecordHabitCompletion records a habit day completion.
func RecordHabitCompletion() {
	HabitCompletions.Inc()
}

// RecordGoalCompleted records a goal reaching completed status.
func RecordGoalCompleted() {
	GoalsCompleted.Inc()
}

// RecordAIUpstream records one attempted AI upstream call.
func RecordAIUpstream(duration time.Duration, err error) {
	AIUpstreamRequests.Inc()
	AIUpstreamDuration.Observe(duration.Seconds())
	if err != nil {
		AIUpstreamErrors.Inc()
	}
}

// RecordAIFallback records an analysis served by the deterministic fallback.
func RecordAIFallback(reason string) {
	AIFallbacks.WithLabelValues(reason).Inc()
}

// RecordSpeechRequest records a speech synthesis request outcome.
func RecordSpeechRequest(proxied bool) {
	result := "fallback"
	if proxied {
		result = "proxied"
	}
	AISpeechRequests.WithLabelValues(result).Inc()
}

// RecordCircuitBreakerTransition records a breaker state change and updates
// the state gauge.
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
}

func breakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}

// RecordCacheHit records a cache hit for the named cache.
func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss for the named cache.
func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// RecordCacheEviction records an entry leaving the named cache.
func RecordCacheEviction(cacheType string) {
	CacheEvictions.WithLabelValues(cacheType).Inc()
}

// UpdateCacheSize sets the current entry count for the named cache.
func UpdateCacheSize(cacheType string, entries int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(entries))
}
