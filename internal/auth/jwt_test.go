// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret-with-enough-length!"

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	if _, err := NewJWTManager("", time.Hour); err == nil {
		t.Error("NewJWTManager with empty secret did not error")
	}
}

func TestNewJWTManagerDefaultTTL(t *testing.T) {
	m, err := NewJWTManager(testSecret, 0)
	if err != nil {
		t.Fatalf("NewJWTManager error: %v", err)
	}
	if m.ttl != DefaultTokenTTL {
		t.Errorf("ttl = %v, want %v", m.ttl, DefaultTokenTTL)
	}
}

func TestGenerateAndVerify(t *testing.T) {
	m, err := NewJWTManager(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewJWTManager error: %v", err)
	}

	token, err := m.Generate("user-42")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if token == "" {
		t.Fatal("Generate returned empty token")
	}

	userID, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("Verify userID = %q, want user-42", userID)
	}
}

func TestVerifyRejections(t *testing.T) {
	m, err := NewJWTManager(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewJWTManager error: %v", err)
	}

	sign := func(t *testing.T, claims jwt.RegisteredClaims, method jwt.SigningMethod, key any) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign test token: %v", err)
		}
		return s
	}

	expired := sign(t, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	}, jwt.SigningMethodHS256, []byte(testSecret))

	wrongSecret := sign(t, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, jwt.SigningMethodHS256, []byte("some-other-secret-entirely-here!!"))

	noSubject := sign(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, jwt.SigningMethodHS256, []byte(testSecret))

	unsigned := sign(t, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired, wantErr: ErrExpiredToken},
		{name: "wrong secret", token: wrongSecret, wantErr: ErrInvalidToken},
		{name: "missing subject", token: noSubject, wantErr: ErrInvalidToken},
		{name: "none algorithm", token: unsigned, wantErr: ErrInvalidToken},
		{name: "garbage", token: "not-a-token", wantErr: ErrInvalidToken},
		{name: "empty", token: "", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
