// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

// Package config provides layered configuration loading for Wellspring.
//
// Configuration is loaded with Koanf v2 from three layers, later layers
// overriding earlier ones:
//
//  1. Defaults: built-in sensible defaults for every setting
//  2. Config File: optional YAML file (config.yaml) for persistent settings
//  3. Environment Variables: override any setting via an explicit mapping
//
// # Quick Start
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	// cfg.Server.Port, cfg.Storage.Backend, etc. are now populated
//
// # Config File Search Order
//
// The config file path can be set explicitly via CONFIG_PATH. Otherwise the
// following locations are checked in order and the first existing file wins:
//
//	config.yaml
//	config.yml
//	/etc/wellspring/config.yaml
//	/etc/wellspring/config.yml
//
// # Environment Variables
//
// Only explicitly mapped variables are honored; unknown environment variables
// never leak into configuration. See envTransformFunc for the full mapping.
// The most common ones:
//
//	HTTP_PORT              server.port (default: 5000)
//	HTTP_HOST              server.host (default: 0.0.0.0)
//	ENVIRONMENT            server.environment (development|production)
//	STORAGE_BACKEND        storage.backend (badger|memory)
//	STORAGE_PATH           storage.path (default: /data/wellspring)
//	JWT_SECRET             security.jwt_secret (required in production)
//	TOKEN_TTL              security.token_ttl (default: 168h)
//	AI_ENABLED             ai.enabled (default: false)
//	AI_API_KEY             ai.api_key
//	LOG_LEVEL              logging.level (default: info)
//	LOG_FORMAT             logging.format (json|console)
//
// # Validation
//
// Load() validates the assembled configuration and fails fast on invalid
// combinations: out-of-range ports, unknown storage backends, a missing JWT
// secret in production, or an enabled AI upstream without credentials.
//
// # Thread Safety
//
// Config is immutable after Load() and safe for concurrent read access.
package config
