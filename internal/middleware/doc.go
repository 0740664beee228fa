// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

/*
Package middleware provides HandlerFunc-style HTTP middleware shared by the
API layer.

The chi router owns routing-level middleware (request IDs, CORS, rate
limits, security headers); this package holds the per-handler wrappers that
instrument and encode individual responses.

Components:

  - PrometheusMetrics: request count, duration, and in-flight gauge per
    method and path, recorded through internal/metrics
  - Compression: pooled gzip encoding for clients sending
    Accept-Encoding: gzip

Both are written against http.HandlerFunc and plug into chi through the
api package's adapter:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

Ordering:

PrometheusMetrics should wrap Compression, not the other way around, so
the captured status code is the one the client sees and the measured
duration includes the encoding work.

Thread Safety:

PrometheusMetrics uses the prometheus client's atomic collectors.
Compression draws gzip writers from a sync.Pool; each request holds its
writer exclusively until the response completes.
*/
package middleware
