// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSanitizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"short", "abc123", "***"},
		{"exactly 12", "123456789012", "***"},
		{"long token", "eyJhbGciOiJIUzI1NiJ9abcd", "eyJh...abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := SanitizeToken(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSanitizeUserID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"short", "user-1", "***"},
		{"long", "user-12345678", "user...5678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := SanitizeUserID(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeUserID(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"no at sign", "notanemail", "***"},
		{"short local part", "ab@example.com", "***@example.com"},
		{"normal", "john.doe@example.com", "jo***@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := SanitizeEmail(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeEmail(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"contains password", "invalid password for user", "authentication error"},
		{"contains token", "token expired", "authentication error"},
		{"contains bearer", "Bearer header malformed", "authentication error"},
		{"plain error", "record not found", "record not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := SanitizeError(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeError(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSanitizeErrorTruncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 300)
	result := SanitizeError(long)
	if len(result) != 203 { // 200 chars + "..."
		t.Errorf("expected truncated error of 203 chars, got %d", len(result))
	}
	if !strings.HasSuffix(result, "...") {
		t.Error("expected truncated error to end with ellipsis")
	}
}

func TestSanitizeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{"token key masked", "token", "abcdefghijklmnop", "abcd...mnop"},
		{"password key masked", "password", "hunter2", "***"},
		{"email value masked", "contact", "user@example.com", "us***@example.com"},
		{"plain value passthrough", "path", "/api/v1/tasks", "/api/v1/tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := SanitizeValue(tt.key, tt.value)
			if result != tt.expected {
				t.Errorf("SanitizeValue(%q, %q) = %q, want %q", tt.key, tt.value, result, tt.expected)
			}
		})
	}
}

func TestLogEventMasksSensitiveFields(t *testing.T) {
	var buf bytes.Buffer
	sl := NewSecurityLoggerWithLogger(zerolog.New(&buf))

	sl.LogEvent(&SecurityEvent{
		Event:     "login_success",
		UserID:    "user-12345678",
		Email:     "john.doe@example.com",
		IPAddress: "203.0.113.7",
		Success:   true,
	})

	output := buf.String()
	if strings.Contains(output, "user-12345678") {
		t.Errorf("raw user ID leaked into log: %s", output)
	}
	if strings.Contains(output, "john.doe@example.com") {
		t.Errorf("raw email leaked into log: %s", output)
	}
	if !strings.Contains(output, "user...5678") {
		t.Errorf("expected masked user ID in log: %s", output)
	}
	if !strings.Contains(output, "jo***@example.com") {
		t.Errorf("expected masked email in log: %s", output)
	}
	if !strings.Contains(output, `"status":"success"`) {
		t.Errorf("expected success status in log: %s", output)
	}
}

func TestLogLoginFailure(t *testing.T) {
	var buf bytes.Buffer
	sl := NewSecurityLoggerWithLogger(zerolog.New(&buf))

	sl.LogLoginFailure("alice@example.com", "198.51.100.1", "curl/8.0", "invalid password hash mismatch")

	output := buf.String()
	if !strings.Contains(output, `"event":"login_failed"`) {
		t.Errorf("expected login_failed event: %s", output)
	}
	if !strings.Contains(output, `"status":"failed"`) {
		t.Errorf("expected failed status: %s", output)
	}
	// Reason mentions "password" so it must be replaced wholesale
	if strings.Contains(output, "hash mismatch") {
		t.Errorf("sensitive failure reason leaked: %s", output)
	}
	if !strings.Contains(output, "authentication error") {
		t.Errorf("expected sanitized reason: %s", output)
	}
}

func TestLogTokenRejected(t *testing.T) {
	var buf bytes.Buffer
	sl := NewSecurityLoggerWithLogger(zerolog.New(&buf))

	sl.LogTokenRejected("203.0.113.9", "/api/v1/tasks", "expired")

	output := buf.String()
	if !strings.Contains(output, `"event":"token_rejected"`) {
		t.Errorf("expected token_rejected event: %s", output)
	}
	if !strings.Contains(output, `"path":"/api/v1/tasks"`) {
		t.Errorf("expected path detail: %s", output)
	}
}

func TestLogRegister(t *testing.T) {
	var buf bytes.Buffer
	sl := NewSecurityLoggerWithLogger(zerolog.New(&buf))

	sl.LogRegister("user-87654321", "new.user@example.com", "192.0.2.4", true, "")

	output := buf.String()
	if !strings.Contains(output, `"event":"register"`) {
		t.Errorf("expected register event: %s", output)
	}
	if strings.Contains(output, "new.user@example.com") {
		t.Errorf("raw email leaked into log: %s", output)
	}
}

func TestLogEventUserAgentTruncation(t *testing.T) {
	var buf bytes.Buffer
	sl := NewSecurityLoggerWithLogger(zerolog.New(&buf))

	longUA := strings.Repeat("a", 250)
	sl.LogEvent(&SecurityEvent{
		Event:     "login_success",
		UserAgent: longUA,
		Success:   true,
	})

	output := buf.String()
	if strings.Contains(output, longUA) {
		t.Errorf("expected user agent to be truncated: %s", output)
	}
	if !strings.Contains(output, strings.Repeat("a", 100)+"...") {
		t.Errorf("expected truncated user agent in log: %s", output)
	}
}
