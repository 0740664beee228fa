// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

// Package main is the entry point for the Wellspring server application.
//
// Wellspring is a self-hosted personal wellness backend: voice/text
// journaling with AI mood analysis, plus tasks, goals, and habit tracking
// with streak and trend analytics.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Storage: Open BadgerDB, falling back to the in-memory store if unavailable
//  3. Authentication: JWT token manager and bcrypt-backed identity service
//  4. Domain services: wellness operations, analytics aggregator, AI client
//  5. HTTP Server: Chi REST API under supervisor control
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml, path via CONFIG_PATH)
//   - Built-in defaults
//
// # Storage Fallback
//
// Wellspring never refuses to start over storage. If STORAGE_BACKEND=badger
// cannot be opened within STORAGE_OPEN_TIMEOUT, the process logs a warning
// and serves from the in-memory store instead; data then lives for the
// process lifetime only. The active backend is visible on /api/v1/health
// and as the wellspring_storage_backend_active gauge.
//
// # AI Upstream
//
// The AI analysis upstream is optional. When AI_ENABLED=false, or whenever
// the upstream times out, errors, or returns an unparsable reply, journal
// analysis is served by the deterministic in-process fallback, so the
// analyze endpoint never fails.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the storage backend
//
// # Example Usage
//
// Development with in-memory storage:
//
//	export STORAGE_BACKEND=memory
//	export JWT_SECRET=dev-secret-change-me
//	./wellspring
//
// Production with durable storage and the AI upstream:
//
//	export STORAGE_BACKEND=badger
//	export STORAGE_PATH=/data/wellspring
//	export JWT_SECRET=$(openssl rand -base64 32)
//	export ENVIRONMENT=production
//	export AI_ENABLED=true
//	export AI_URL=https://api.openai.com/v1/chat/completions
//	export AI_API_KEY=sk-...
//	./wellspring
//
// Docker:
//
//	docker run -d \
//	  -e JWT_SECRET=your-32-char-secret \
//	  -v wellspring-data:/data/wellspring \
//	  -p 5000:5000 \
//	  ghcr.io/tomtom215/wellspring
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/wellspring/internal/ai"
	"github.com/tomtom215/wellspring/internal/analytics"
	"github.com/tomtom215/wellspring/internal/api"
	"github.com/tomtom215/wellspring/internal/auth"
	"github.com/tomtom215/wellspring/internal/cache"
	"github.com/tomtom215/wellspring/internal/config"
	"github.com/tomtom215/wellspring/internal/logging"
	"github.com/tomtom215/wellspring/internal/metrics"
	"github.com/tomtom215/wellspring/internal/storage"
	"github.com/tomtom215/wellspring/internal/supervisor"
	"github.com/tomtom215/wellspring/internal/supervisor/services"
	"github.com/tomtom215/wellspring/internal/wellness"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Wellspring with supervisor tree")
	logging.Info().
		Str("storage_backend", cfg.Storage.Backend).
		Str("environment", cfg.Server.Environment).
		Bool("ai_enabled", cfg.AI.Enabled).
		Msg("Configuration loaded")

	// Open the storage backend. Open never fails: an unreachable Badger
	// directory degrades to the in-memory store with a warning.
	store := storage.Open(cfg.Storage.Backend, cfg.Storage.Path, cfg.Storage.OpenTimeout)
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing storage")
		}
	}()
	metrics.SetStorageBackend(store.Kind())

	if cfg.Storage.Backend == storage.KindBadger && store.Kind() == storage.KindMemory {
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  NOTICE: Durable storage is unavailable, serving from memory")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  Journals, tasks, goals, and habits will be LOST on restart!")
		logging.Warn().Msg("  Check STORAGE_PATH permissions and disk space, then restart.")
		logging.Warn().Msg("============================================================")
	}

	// Authentication: token manager plus the identity service
	jwtManager, err := auth.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.TokenTTL)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}
	authService, err := auth.NewService(store, jwtManager, cfg.Security.BcryptCost)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize auth service")
	}
	logging.Info().Msg("JWT authentication enabled")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
		logging.Warn().Msg("This should only be used for local development and CI!")
	}

	// Domain services
	wellnessService := wellness.NewService(store)
	analyticsService := analytics.NewService(store)

	aiClient := ai.NewClient(ai.Config{
		Enabled:           cfg.AI.Enabled,
		URL:               cfg.AI.URL,
		APIKey:            cfg.AI.APIKey,
		Model:             cfg.AI.Model,
		Timeout:           cfg.AI.Timeout,
		RequestsPerMinute: cfg.AI.RequestsPerMinute,
		SpeechURL:         cfg.AI.SpeechURL,
	})
	if cfg.AI.Enabled {
		logging.Info().Str("model", cfg.AI.Model).Msg("AI analysis upstream enabled")
	} else {
		logging.Info().Msg("AI analysis upstream disabled - deterministic fallback serves all analysis")
	}

	// Response cache for the dashboard and analytics aggregates
	var responseCache *cache.Cache
	if !cfg.Cache.Disabled {
		responseCache = cache.New("analytics", cfg.Cache.TTL)
		logging.Info().Dur("ttl", cfg.Cache.TTL).Msg("Response cache enabled")
	}

	handler := api.NewHandler(api.HandlerConfig{
		Store:       store,
		Auth:        authService,
		Tokens:      jwtManager,
		Wellness:    wellnessService,
		Analytics:   analyticsService,
		AI:          aiClient,
		Cache:       responseCache,
		Development: !cfg.Server.IsProduction(),
	})

	router := api.NewRouter(handler, api.MiddlewareConfigFromApp(cfg))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create structured logger for supervisor using our slog adapter.
	// This bridges zerolog to slog for sutureslog compatibility.
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Data layer: periodic Badger value-log GC (no-op for the memory store)
	tree.AddDataService(services.NewStorageMaintenanceService(store, cfg.Storage.GCInterval))

	// API layer
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
