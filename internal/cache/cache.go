// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/wellspring/internal/metrics"
)

// cleanupInterval is how often the background sweep removes expired entries.
const cleanupInterval = 5 * time.Minute

// Entry is a cached value with its expiration time.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache is a thread-safe in-memory cache with TTL expiration. It backs the
// dashboard and analytics responses, which are cheap to rebuild but read on
// every page load.
//
// Keys are plain strings; Key and UserPrefix build user-scoped keys so that
// DeletePrefix can drop every cached response for one user after a mutation.
type Cache struct {
	name    string
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	stats   Stats
}

// Stats tracks cache performance counters.
type Stats struct {
	mu          sync.RWMutex
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache whose entries expire after ttl. The name labels the
// cache in Prometheus metrics (cache_type). A background goroutine sweeps
// expired entries every five minutes and runs for the life of the process.
//
// Example:
//
//	c := cache.New("analytics", 2*time.Minute)
//	c.Set(cache.Key(userID, "dashboard"), dashboard)
//	if data, ok := c.Get(cache.Key(userID, "dashboard")); ok {
//	    return data.(*analytics.Dashboard), nil
//	}
func New(name string, ttl time.Duration) *Cache {
	c := &Cache{
		name:    name,
		entries: make(map[string]Entry),
		ttl:     ttl,
		stats: Stats{
			LastCleanup: time.Now(),
		},
	}

	go c.cleanupLoop()

	return c
}

// Get retrieves a value by key. Expired entries are removed on access and
// reported as misses.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		size := len(c.entries)
		c.mu.Unlock()
		c.recordMiss()
		c.recordEvictions(1)
		c.setSize(size)
		return nil, false
	}

	c.recordHit()
	return entry.Data, true
}

// Set stores a value with the cache's default TTL, overwriting any existing
// entry under the same key.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = Entry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
	size := len(c.entries)
	c.mu.Unlock()

	c.setSize(size)
}

// Delete removes one entry. Safe to call for keys that do not exist.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	size := len(c.entries)
	c.mu.Unlock()

	if existed {
		c.recordEvictions(1)
	}
	c.setSize(size)
}

// DeletePrefix removes every entry whose key starts with prefix and returns
// the number removed. Handlers call this with UserPrefix(userID) after any
// successful mutation so the user's next dashboard read is rebuilt.
func (c *Cache) DeletePrefix(prefix string) int {
	c.mu.Lock()
	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	if removed > 0 {
		c.recordEvictions(int64(removed))
	}
	c.setSize(size)
	return removed
}

// Clear removes all entries in one map swap.
func (c *Cache) Clear() {
	c.mu.Lock()
	evictions := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	if evictions > 0 {
		c.recordEvictions(evictions)
	}
	c.setSize(0)
}

// GetStats returns a snapshot of the cache counters.
func (c *Cache) GetStats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	return Stats{
		Hits:        c.stats.Hits,
		Misses:      c.stats.Misses,
		Evictions:   c.stats.Evictions,
		TotalKeys:   c.stats.TotalKeys,
		LastCleanup: c.stats.LastCleanup,
	}
}

// HitRate returns the hit percentage over all lookups, 0 when idle.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// cleanupLoop periodically removes expired entries.
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

// cleanup removes all expired entries.
func (c *Cache) cleanup() {
	now := time.Now()
	c.mu.Lock()
	evictions := int64(0)
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evictions++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	if evictions > 0 {
		c.recordEvictions(evictions)
	}

	c.stats.mu.Lock()
	c.stats.TotalKeys = int64(size)
	c.stats.LastCleanup = now
	c.stats.mu.Unlock()

	metrics.UpdateCacheSize(c.name, size)
}

func (c *Cache) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()

	metrics.RecordCacheHit(c.name)
}

func (c *Cache) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()

	metrics.RecordCacheMiss(c.name)
}

func (c *Cache) recordEvictions(n int64) {
	c.stats.mu.Lock()
	c.stats.Evictions += n
	c.stats.mu.Unlock()

	for i := int64(0); i < n; i++ {
		metrics.RecordCacheEviction(c.name)
	}
}

func (c *Cache) setSize(size int) {
	c.stats.mu.Lock()
	c.stats.TotalKeys = int64(size)
	c.stats.mu.Unlock()

	metrics.UpdateCacheSize(c.name, size)
}

// UserPrefix returns the key prefix shared by every cached response for one
// user. Pass it to DeletePrefix to invalidate that user's cache.
func UserPrefix(userID string) string {
	return "user:" + userID + ":"
}

// Key builds a user-scoped cache key from an endpoint name and any variant
// parts, e.g. Key(userID, "mood", "weekly"). All keys for a user share
// UserPrefix(userID).
func Key(userID string, parts ...string) string {
	return UserPrefix(userID) + strings.Join(parts, ":")
}
