// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package api

import (
	"time"

	"github.com/tomtom215/wellspring/internal/ai"
	"github.com/tomtom215/wellspring/internal/analytics"
	"github.com/tomtom215/wellspring/internal/auth"
	"github.com/tomtom215/wellspring/internal/cache"
	"github.com/tomtom215/wellspring/internal/logging"
	"github.com/tomtom215/wellspring/internal/storage"
	"github.com/tomtom215/wellspring/internal/wellness"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Handler holds the services behind the HTTP endpoints. All fields are set
// once at construction and never mutated, so concurrent requests share it
// freely.
type Handler struct {
	store     storage.Store
	auth      *auth.Service
	tokens    *auth.JWTManager
	wellness  *wellness.Service
	analytics *analytics.Service
	ai        *ai.Client
	cache     *cache.Cache
	security  *logging.SecurityLogger

	// development disables 500-message redaction.
	development bool
	startTime   time.Time
}

// HandlerConfig carries the dependencies for NewHandler.
type HandlerConfig struct {
	Store     storage.Store
	Auth      *auth.Service
	Tokens    *auth.JWTManager
	Wellness  *wellness.Service
	Analytics *analytics.Service
	AI        *ai.Client
	Cache     *cache.Cache

	// Development marks a non-production deployment: internal error
	// messages pass through to responses instead of being redacted.
	Development bool
}

// NewHandler creates the API handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		store:       cfg.Store,
		auth:        cfg.Auth,
		tokens:      cfg.Tokens,
		wellness:    cfg.Wellness,
		analytics:   cfg.Analytics,
		ai:          cfg.AI,
		cache:       cfg.Cache,
		security:    logging.NewSecurityLogger(),
		development: cfg.Development,
		startTime:   time.Now(),
	}
}

// GetCacheStats returns response cache statistics, zero-valued when caching
// is disabled.
func (h *Handler) GetCacheStats() cache.Stats {
	if h.cache != nil {
		return h.cache.GetStats()
	}
	return cache.Stats{}
}

// invalidateUser drops every cached aggregate for the user. Mutation
// handlers call this so dashboards and trends never serve stale state.
func (h *Handler) invalidateUser(userID string) {
	if h.cache != nil {
		h.cache.DeletePrefix(cache.UserPrefix(userID))
	}
}

// cacheGet reads a cached value when caching is enabled.
func (h *Handler) cacheGet(key string) (interface{}, bool) {
	if h.cache == nil {
		return nil, false
	}
	return h.cache.Get(key)
}

// cacheSet stores a value when caching is enabled.
func (h *Handler) cacheSet(key string, value interface{}) {
	if h.cache != nil {
		h.cache.Set(key, value)
	}
}
