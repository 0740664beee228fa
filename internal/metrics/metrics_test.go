// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAPIRequest tests API metric recording across status classes
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode int
		duration   time.Duration
	}{
		{
			name:       "successful GET",
			method:     "GET",
			endpoint:   "/api/v1/tasks",
			statusCode: 200,
			duration:   15 * time.Millisecond,
		},
		{
			name:       "created POST",
			method:     "POST",
			endpoint:   "/api/v1/journal",
			statusCode: 201,
			duration:   40 * time.Millisecond,
		},
		{
			name:       "client error",
			method:     "PUT",
			endpoint:   "/api/v1/goals/{id}",
			statusCode: 404,
			duration:   2 * time.Millisecond,
		},
		{
			name:       "server error",
			method:     "GET",
			endpoint:   "/api/v1/analytics/stats",
			statusCode: 500,
			duration:   1200 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Recording must not panic regardless of label values
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
		})
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("expected gauge %v after increment, got %v", before+1, got)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected gauge %v after decrement, got %v", before, got)
	}
}

func TestRecordAuthAttempt(t *testing.T) {
	successBefore := testutil.ToFloat64(AuthAttempts.WithLabelValues("login", "success"))
	failureBefore := testutil.ToFloat64(AuthAttempts.WithLabelValues("login", "failure"))

	RecordAuthAttempt("login", true)
	RecordAuthAttempt("login", false)
	RecordAuthAttempt("login", false)

	if got := testutil.ToFloat64(AuthAttempts.WithLabelValues("login", "success")); got != successBefore+1 {
		t.Errorf("expected %v successes, got %v", successBefore+1, got)
	}
	if got := testutil.ToFloat64(AuthAttempts.WithLabelValues("login", "failure")); got != failureBefore+2 {
		t.Errorf("expected %v failures, got %v", failureBefore+2, got)
	}
}

func TestSetStorageBackend(t *testing.T) {
	SetStorageBackend("memory")

	if got := testutil.ToFloat64(StorageBackendActive.WithLabelValues("memory")); got != 1 {
		t.Errorf("expected memory backend gauge 1, got %v", got)
	}
	if got := testutil.ToFloat64(StorageBackendActive.WithLabelValues("badger")); got != 0 {
		t.Errorf("expected badger backend gauge 0, got %v", got)
	}

	// Switching backends must flip both gauges
	SetStorageBackend("badger")

	if got := testutil.ToFloat64(StorageBackendActive.WithLabelValues("badger")); got != 1 {
		t.Errorf("expected badger backend gauge 1, got %v", got)
	}
	if got := testutil.ToFloat64(StorageBackendActive.WithLabelValues("memory")); got != 0 {
		t.Errorf("expected memory backend gauge 0, got %v", got)
	}
}

func TestRecordMaintenanceRun(t *testing.T) {
	runsBefore := testutil.ToFloat64(StorageMaintenanceRuns)
	errorsBefore := testutil.ToFloat64(StorageMaintenanceErrors)

	RecordMaintenanceRun(nil)
	RecordMaintenanceRun(errors.New("value log gc failed"))

	if got := testutil.ToFloat64(StorageMaintenanceRuns); got != runsBefore+2 {
		t.Errorf("expected %v runs, got %v", runsBefore+2, got)
	}
	if got := testutil.ToFloat64(StorageMaintenanceErrors); got != errorsBefore+1 {
		t.Errorf("expected %v errors, got %v", errorsBefore+1, got)
	}
}

func TestRecordAIFallback(t *testing.T) {
	before := testutil.ToFloat64(AIFallbacks.WithLabelValues("disabled"))

	RecordAIFallback("disabled")

	if got := testutil.ToFloat64(AIFallbacks.WithLabelValues("disabled")); got != before+1 {
		t.Errorf("expected %v fallbacks, got %v", before+1, got)
	}
}

func TestRecordAIUpstream(t *testing.T) {
	requestsBefore := testutil.ToFloat64(AIUpstreamRequests)
	errorsBefore := testutil.ToFloat64(AIUpstreamErrors)

	RecordAIUpstream(120*time.Millisecond, nil)
	RecordAIUpstream(3*time.Second, errors.New("status 503"))

	if got := testutil.ToFloat64(AIUpstreamRequests); got != requestsBefore+2 {
		t.Errorf("expected %v requests, got %v", requestsBefore+2, got)
	}
	if got := testutil.ToFloat64(AIUpstreamErrors); got != errorsBefore+1 {
		t.Errorf("expected %v errors, got %v", errorsBefore+1, got)
	}
}

func TestRecordCircuitBreakerTransition(t *testing.T) {
	tests := []struct {
		name      string
		toState   string
		wantGauge float64
	}{
		{name: "closed maps to 0", toState: "closed", wantGauge: 0},
		{name: "half-open maps to 1", toState: "half-open", wantGauge: 1},
		{name: "open maps to 2", toState: "open", wantGauge: 2},
		{name: "unknown state maps to 0", toState: "mystery", wantGauge: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordCircuitBreakerTransition("ai-upstream", "closed", tt.toState)

			if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("ai-upstream")); got != tt.wantGauge {
				t.Errorf("expected state gauge %v for %q, got %v", tt.wantGauge, tt.toState, got)
			}
		})
	}
}

func TestRecordSpeechRequest(t *testing.T) {
	proxiedBefore := testutil.ToFloat64(AISpeechRequests.WithLabelValues("proxied"))
	fallbackBefore := testutil.ToFloat64(AISpeechRequests.WithLabelValues("fallback"))

	RecordSpeechRequest(true)
	RecordSpeechRequest(false)

	if got := testutil.ToFloat64(AISpeechRequests.WithLabelValues("proxied")); got != proxiedBefore+1 {
		t.Errorf("expected %v proxied, got %v", proxiedBefore+1, got)
	}
	if got := testutil.ToFloat64(AISpeechRequests.WithLabelValues("fallback")); got != fallbackBefore+1 {
		t.Errorf("expected %v fallback, got %v", fallbackBefore+1, got)
	}
}

func TestCacheMetrics(t *testing.T) {
	hitsBefore := testutil.ToFloat64(CacheHits.WithLabelValues("analytics"))

	RecordCacheHit("analytics")
	RecordCacheMiss("analytics")
	RecordCacheEviction("analytics")
	UpdateCacheSize("analytics", 7)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("analytics")); got != hitsBefore+1 {
		t.Errorf("expected %v hits, got %v", hitsBefore+1, got)
	}
	if got := testutil.ToFloat64(CacheSize.WithLabelValues("analytics")); got != 7 {
		t.Errorf("expected cache size 7, got %v", got)
	}
}

// TestConcurrentRecording verifies metric helpers are safe under concurrent use
func TestConcurrentRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				RecordAPIRequest("GET", "/api/v1/habits", 200, time.Millisecond)
				RecordJournalEntry("user")
				RecordTaskCompleted()
				RecordHabitCompletion()
				RecordGoalCompleted()
				RecordAIFallback("upstream_error")
				RecordCacheMiss("dashboard")
			}
		}()
	}
	wg.Wait()
}
