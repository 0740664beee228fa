// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package config

import (
	"fmt"
	"net/url"
)

// Security limit constants
const (
	minJWTSecretLength = 32
	minBcryptCost      = 4  // bcrypt.MinCost
	maxBcryptCost      = 31 // bcrypt.MaxCost
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateStorage(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateAI(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got: %d", c.Server.Port)
	}

	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got: %v", c.Server.Timeout)
	}

	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got: %s", c.Server.Environment)
	}

	if len(c.Server.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must not be empty (use * to allow all)")
	}

	return nil
}

// validateStorage validates persistence backend configuration
func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case "badger", "memory":
	default:
		return fmt.Errorf("STORAGE_BACKEND must be badger or memory, got: %s", c.Storage.Backend)
	}

	if c.Storage.Backend == "badger" && c.Storage.Path == "" {
		return fmt.Errorf("STORAGE_PATH is required when STORAGE_BACKEND=badger")
	}

	if c.Storage.OpenTimeout <= 0 {
		return fmt.Errorf("STORAGE_OPEN_TIMEOUT must be positive, got: %v", c.Storage.OpenTimeout)
	}

	if c.Storage.GCInterval <= 0 {
		return fmt.Errorf("STORAGE_GC_INTERVAL must be positive, got: %v", c.Storage.GCInterval)
	}

	return nil
}

// validateSecurity validates authentication configuration.
// A weak or missing JWT secret is tolerated in development (one is generated
// at startup) but rejected in production.
func (c *Config) validateSecurity() error {
	if c.Server.IsProduction() {
		if c.Security.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when ENVIRONMENT=production")
		}
		if len(c.Security.JWTSecret) < minJWTSecretLength {
			return fmt.Errorf("JWT_SECRET must be at least %d characters in production, got: %d",
				minJWTSecretLength, len(c.Security.JWTSecret))
		}
	}

	if c.Security.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got: %v", c.Security.TokenTTL)
	}

	if c.Security.BcryptCost < minBcryptCost || c.Security.BcryptCost > maxBcryptCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got: %d",
			minBcryptCost, maxBcryptCost, c.Security.BcryptCost)
	}

	return nil
}

// validateAI validates the AI upstream configuration (only if enabled)
func (c *Config) validateAI() error {
	if !c.AI.Enabled {
		return nil // Fallback analysis needs no upstream settings
	}

	if c.AI.URL == "" {
		return fmt.Errorf("AI_URL is required when AI_ENABLED=true")
	}
	if err := validateHTTPURL(c.AI.URL, "AI_URL"); err != nil {
		return err
	}

	if c.AI.APIKey == "" {
		return fmt.Errorf("AI_API_KEY is required when AI_ENABLED=true")
	}

	if c.AI.Model == "" {
		return fmt.Errorf("AI_MODEL is required when AI_ENABLED=true")
	}

	if c.AI.Timeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive, got: %v", c.AI.Timeout)
	}

	if c.AI.RequestsPerMinute < 1 {
		return fmt.Errorf("AI_REQUESTS_PER_MINUTE must be at least 1, got: %d", c.AI.RequestsPerMinute)
	}

	if c.AI.SpeechURL != "" {
		if err := validateHTTPURL(c.AI.SpeechURL, "AI_SPEECH_URL"); err != nil {
			return err
		}
	}

	return nil
}

// validateCache validates the response cache configuration
func (c *Config) validateCache() error {
	if c.Cache.Disabled {
		return nil
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got: %v", c.Cache.TTL)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, got: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got: %s", c.Logging.Format)
	}

	return nil
}

// validateHTTPURL validates that a URL is properly formatted for HTTP/HTTPS services.
// Unlike base-URL-only fields, paths are allowed (chat-completions endpoints carry one).
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	return nil
}
