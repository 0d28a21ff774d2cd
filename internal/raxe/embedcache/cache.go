// ============================================================================
// raxe scan core
// ============================================================================
//
// Package:     embedcache
// Description: Thread-safe hash-keyed LRU memoizing text -> embedding
//              vector (C4), and reused by the rule executor (C3) as the
//              (pattern hash, text hash) match cache.
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package embedcache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Key returns the first 16 hex characters of SHA-256(text) — the
// keying scheme spec.md §4.4 requires; collision probability is
// negligible for this domain.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:16]
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
	hasTTL    bool
}

// Stats is an atomic snapshot of cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	Expirations int64
}

// HitRate returns hits / (hits + misses), or 0 if there have been no
// lookups yet.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cache is a thread-safe, size-bounded, optionally TTL'd LRU keyed by
// Key(text). Zero value is not usable; use New.
type Cache[V any] struct {
	mu  sync.Mutex
	lru *lru.Cache[string, entry[V]]
	ttl time.Duration

	hits        atomic.Int64
	misses      atomic.Int64
	evictions   atomic.Int64
	expirations atomic.Int64

	disabled bool
}

// New creates a Cache with the given max size (0 disables caching
// entirely, per spec.md §4.4) and optional TTL (0 means entries never
// expire on their own).
func New[V any](maxSize int, ttl time.Duration) (*Cache[V], error) {
	c := &Cache[V]{ttl: ttl}
	if maxSize <= 0 {
		c.disabled = true
		return c, nil
	}

	l, err := lru.NewWithEvict(maxSize, func(string, entry[V]) {
		c.evictions.Add(1)
	})
	if err != nil {
		return nil, err
	}
	c.lru = l
	return c, nil
}

// Get looks up text, transparently expiring and evicting stale entries.
func (c *Cache[V]) Get(text string) (V, bool) {
	var zero V
	if c.disabled {
		c.misses.Add(1)
		return zero, false
	}

	key := Key(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		return zero, false
	}
	if e.hasTTL && time.Now().After(e.expiresAt) {
		c.lru.Remove(key)
		c.expirations.Add(1)
		c.misses.Add(1)
		return zero, false
	}

	c.hits.Add(1)
	return e.value, true
}

// Set inserts or replaces the entry for text.
func (c *Cache[V]) Set(text string, value V) {
	if c.disabled {
		return
	}

	key := Key(text)
	e := entry[V]{value: value}
	if c.ttl > 0 {
		e.expiresAt = time.Now().Add(c.ttl)
		e.hasTTL = true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, e)
}

// Len returns the current number of entries (not including lazily
// expired ones not yet touched by Get).
func (c *Cache[V]) Len() int {
	if c.disabled {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns an atomic snapshot of cache counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Evictions:   c.evictions.Load(),
		Expirations: c.expirations.Load(),
	}
}

// Purge removes all entries, used on model reload (embedding vectors
// from a superseded model are no longer valid).
func (c *Cache[V]) Purge() {
	if c.disabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}
