package middleware

import (
	"sync"
	"time"
)

// idemEntry pairs a captured response with its expiry deadline.
type idemEntry struct {
	resp      *cachedResponse
	expiresAt time.Time
}

// idempotencyCache stores captured write responses keyed by request hash.
type idempotencyCache struct {
	mu    sync.RWMutex
	items map[int]idemEntry
	ttl   time.Duration
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items: make(map[int]idemEntry),
		ttl:   ttl,
	}
	go c.startCleanup()
	return c
}

// Get returns the cached response when present and not yet expired.
func (c *idempotencyCache) Get(key int) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.items[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.resp, true
}

// Set stores a captured response, stamping its expiry from the cache TTL.
func (c *idempotencyCache) Set(key int, resp *cachedResponse) {
	now := time.Now()
	resp.Timestamp = now

	c.mu.Lock()
	c.items[key] = idemEntry{resp: resp, expiresAt: now.Add(c.ttl)}
	c.mu.Unlock()
}

func (c *idempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

// cleanup drops entries whose expiry has passed.
func (c *idempotencyCache) cleanup() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.items {
		if now.After(entry.expiresAt) {
			delete(c.items, key)
		}
	}
}
