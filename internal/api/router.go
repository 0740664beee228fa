// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

// Package api provides HTTP routing using Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/wellspring/internal/middleware"
)

// Router assembles the HTTP surface from the handler and middleware factories.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware config falls back to the
// secure defaults.
func NewRouter(handler *Handler, middlewareConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(middlewareConfig),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so the middleware package plugs into r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(RequestIDWithLogging())      // Add X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// ========================
	// Health Endpoints
	// ========================
	// Permissive rate limiting so monitors can poll frequently
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Authentication Endpoints
	// ========================
	// Strict rate limiting for auth endpoints (brute force prevention)
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAuth())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Post("/register", router.handler.Register)

		// Login has the strictest rate limiting (5 attempts per 5 minutes)
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(router.handler.Authenticate)
			r.Get("/me", router.handler.Me)
		})
	})

	// ========================
	// AI Endpoints
	// ========================
	// Moderate rate limiting: both endpoints may reach the paid upstream
	r.Route("/api/v1/ai", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAI())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(router.handler.Authenticate)

		r.Post("/analyze", router.handler.Analyze)
		r.Post("/speak", router.handler.Speak)
	})

	// ========================
	// Journal Endpoints
	// ========================
	// Read-only: entries are created through the AI analyze flow
	r.Route("/api/v1/journal", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(router.handler.Authenticate)

		r.Get("/", router.handler.JournalList)
	})

	// ========================
	// Task Endpoints
	// ========================
	r.Route("/api/v1/tasks", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(router.handler.Authenticate)

		r.Get("/", router.handler.TaskList)
		r.Post("/", router.handler.TaskCreate)
		r.Put("/{id}", router.handler.TaskUpdate)
		r.Delete("/{id}", router.handler.TaskDelete)
	})

	// ========================
	// Goal Endpoints
	// ========================
	r.Route("/api/v1/goals", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(router.handler.Authenticate)

		r.Get("/", router.handler.GoalList)
		r.Post("/", router.handler.GoalCreate)
		r.Put("/{id}", router.handler.GoalUpdate)
		r.Delete("/{id}", router.handler.GoalDelete)
	})

	// ========================
	// Habit Endpoints
	// ========================
	// Completion is a distinct action, not a generic update, because of
	// the once-per-day invariant
	r.Route("/api/v1/habits", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(router.handler.Authenticate)

		r.Get("/", router.handler.HabitList)
		r.Post("/", router.handler.HabitCreate)
		r.Put("/{id}", router.handler.HabitUpdate)
		r.Delete("/{id}", router.handler.HabitDelete)
		r.Post("/{id}/complete", router.handler.HabitComplete)
	})

	// ========================
	// Dashboard Endpoint
	// ========================
	// Permissive rate limiting for the cached aggregate read
	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAnalytics())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(router.handler.Authenticate)

		r.Get("/", router.handler.Dashboard)
	})

	// ========================
	// Analytics Endpoints
	// ========================
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAnalytics())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(router.handler.Authenticate)

		// Trend responses compress well; exports must not be wrapped
		// because the attachment sets its own Content-Length
		r.With(chiMiddleware(middleware.Compression)).Get("/mood", router.handler.MoodTrend)

		// Exports are resource intensive and rate limited accordingly
		r.With(router.chiMiddleware.RateLimitExport()).Get("/export", router.handler.Export)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
