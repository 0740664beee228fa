// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

/*
Package api provides the HTTP REST API layer for Wellspring.

It wires the domain services (auth, wellness, analytics, ai) behind a Chi
router, speaking a single JSON response envelope on every endpoint. The
package owns routing, authentication middleware, request validation, error
mapping, and the per-user response cache for the read-heavy aggregates.

Route Groups:

 1. Health (/api/v1/health):
    Liveness, readiness (storage backend and AI upstream availability),
    and a combined status endpoint. Permissive rate limit for monitors.

 2. Auth (/api/v1/auth):
    Registration and login (strict per-IP limits against credential
    stuffing) plus the authenticated current-user read.

 3. AI (/api/v1/ai):
    Journal analysis, which persists a JournalEntry as a side effect and
    always answers 200 thanks to the deterministic fallback, and speech
    synthesis, which returns audio bytes or an explicit fallback signal.

 4. Wellness CRUD (/api/v1/journal, /tasks, /goals, /habits):
    Per-entity list/create/update/delete scoped to the token's user.
    Habit completion is its own action endpoint because of the
    once-per-day invariant.

 5. Aggregates (/api/v1/dashboard, /api/v1/analytics):
    Dashboard, mood trend, and export. Dashboard and trend responses are
    served from a per-user TTL cache that every mutation invalidates.

 6. Observability (/metrics):
    Prometheus scrape endpoint.

Response Envelope:

Every JSON endpoint answers with the same wrapper:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "..."}}
	{"status": "error", "error": {"code": "...", "message": "..."}, "metadata": {...}}

Error codes map domain sentinels to statuses: VALIDATION_ERROR (400),
AUTHENTICATION_ERROR (401), NOT_FOUND (404), CONFLICT_ERROR (409),
RATE_LIMIT_EXCEEDED (429), INTERNAL_ERROR (500, message redacted outside
development mode).

Usage Example:

	store, _ := storage.Open(ctx, cfg.Storage)
	handler := api.NewHandler(api.HandlerConfig{
	    Store:     store,
	    Auth:      authService,
	    Tokens:    jwtManager,
	    Wellness:  wellnessService,
	    Analytics: analyticsService,
	    AI:        aiClient,
	    Cache:     responseCache,
	})
	router := api.NewRouter(handler, api.MiddlewareConfigFromApp(cfg))
	http.ListenAndServe(":3000", router.SetupChi())

Thread Safety:

Handlers hold no per-request state; all shared resources (store, cache,
AI client) provide their own synchronization.
*/
package api
