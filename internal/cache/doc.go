// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

/*
Package cache provides thread-safe in-memory caching with TTL support.

This package implements the response cache for the dashboard and analytics
endpoints. Those responses aggregate every collection a user owns, so they
are the most expensive reads in the API while also being the most frequently
requested; a short TTL keeps them cheap without letting them go stale.

# Overview

The cache provides:
  - Thread-safe concurrent access (sync.RWMutex)
  - Time-to-live (TTL) expiration with lazy checks on Get
  - Prefix deletion for per-user invalidation after mutations
  - Hit/miss/eviction/size counters exported through internal/metrics

# Invalidation

Every key is built with Key(userID, ...) so it carries the user's prefix.
After any successful write (journal entry, task, goal, or habit mutation)
the API layer calls DeletePrefix(UserPrefix(userID)), which drops all of
that user's cached responses at once. Responses for other users are
untouched.

# Usage Example

	c := cache.New("analytics", 2*time.Minute)

	key := cache.Key(userID, "mood", "weekly")
	if data, ok := c.Get(key); ok {
	    return data.(*analytics.MoodTrend), nil
	}

	trend, err := svc.MoodTrend(ctx, userID, period)
	if err != nil {
	    return nil, err
	}
	c.Set(key, trend)

	// after a mutation by this user
	c.DeletePrefix(cache.UserPrefix(userID))

# Thread Safety

All methods are safe for concurrent use. The background cleanup goroutine
runs every five minutes for the life of the process; entries read between
sweeps are expired lazily by Get.
*/
package cache
