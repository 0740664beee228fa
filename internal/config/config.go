// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file, and environment variables.
//
// Configuration Categories:
//
//  1. Infrastructure:
//     - Server: HTTP server settings (host, port, timeouts, CORS)
//     - Storage: persistence backend selection (badger or memory)
//
//  2. Security:
//     - JWT signing secret and token lifetime
//     - bcrypt cost for password hashing
//     - rate limiting toggle
//
//  3. Integrations:
//     - AI: optional text-analysis upstream (disabled by default; the
//       deterministic fallback serves all analysis when disabled)
//
//  4. Observability:
//     - Cache: dashboard/analytics response cache
//     - Logging: log levels and output formats
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from
// multiple goroutines.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Storage  StorageConfig  `koanf:"storage"`
	Security SecurityConfig `koanf:"security"`
	AI       AIConfig       `koanf:"ai"`
	Cache    CacheConfig    `koanf:"cache"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: bind address (default: 0.0.0.0)
//   - HTTP_PORT: listen port (default: 5000)
//   - HTTP_TIMEOUT: per-request read/write timeout (default: 30s)
//   - ENVIRONMENT: development or production (default: development)
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // Gates production-only checks (JWT secret strength, error redaction)
	CORSOrigins []string      `koanf:"cors_origins"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// StorageConfig selects and tunes the persistence backend.
//
// The backend is chosen once at startup. "badger" opens a durable embedded
// document store; if the open fails within OpenTimeout the process falls back
// to the in-memory store and keeps serving (data lost on restart). "memory"
// skips the durable store entirely.
//
// Environment Variables:
//   - STORAGE_BACKEND: badger or memory (default: badger)
//   - STORAGE_PATH: badger data directory (default: /data/wellspring)
//   - STORAGE_OPEN_TIMEOUT: max time to wait for the store to open (default: 5s)
//   - STORAGE_GC_INTERVAL: badger value-log GC cadence (default: 10m)
type StorageConfig struct {
	Backend     string        `koanf:"backend"`
	Path        string        `koanf:"path"`
	OpenTimeout time.Duration `koanf:"open_timeout"`
	GCInterval  time.Duration `koanf:"gc_interval"`
}

// SecurityConfig holds authentication and rate limiting settings.
//
// Environment Variables:
//   - JWT_SECRET: HMAC signing secret (required in production, 32+ chars)
//   - TOKEN_TTL: bearer token lifetime (default: 168h = 7 days)
//   - BCRYPT_COST: bcrypt work factor (default: 12)
//   - DISABLE_RATE_LIMIT: disable all rate limiting (default: false)
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	TokenTTL          time.Duration `koanf:"token_ttl"`
	BcryptCost        int           `koanf:"bcrypt_cost"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// AIConfig holds settings for the optional text-analysis upstream.
//
// When disabled (the default) or when the upstream misbehaves, journal
// analysis is served by the deterministic in-process fallback, so the
// analyze path never fails regardless of these settings.
//
// Environment Variables:
//   - AI_ENABLED: enable the remote upstream (default: false)
//   - AI_URL: chat-completions endpoint URL
//   - AI_API_KEY: bearer credential for the upstream
//   - AI_MODEL: model identifier sent with each request
//   - AI_TIMEOUT: per-request timeout (default: 10s)
//   - AI_REQUESTS_PER_MINUTE: outbound rate limit (default: 30)
//   - AI_SPEECH_URL: optional text-to-speech endpoint; when empty the
//     speak endpoint tells clients to synthesize locally
type AIConfig struct {
	Enabled           bool          `koanf:"enabled"`
	URL               string        `koanf:"url"`
	APIKey            string        `koanf:"api_key"`
	Model             string        `koanf:"model"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerMinute int           `koanf:"requests_per_minute"`
	SpeechURL         string        `koanf:"speech_url"`
}

// CacheConfig tunes the dashboard/analytics response cache.
//
// Environment Variables:
//   - CACHE_TTL: entry lifetime (default: 60s)
//   - CACHE_DISABLED: bypass the cache entirely (default: false)
type CacheConfig struct {
	TTL      time.Duration `koanf:"ttl"`
	Disabled bool          `koanf:"disabled"`
}

// LoggingConfig holds log output settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
