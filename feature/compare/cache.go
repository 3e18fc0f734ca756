package compare

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry is a parsed stored schedule.
type cacheEntry struct {
	value *parsed
	built time.Time
}

// tableCache holds parsed stored schedules keyed by object, ETag and
// parser options, so a changed object or mapping is never served stale.
type tableCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group
	now     func() time.Time
}

func newTableCache(ttl time.Duration) *tableCache {
	return &tableCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *tableCache) expired(e cacheEntry) bool {
	if c.ttl <= 0 {
		return true // No caching
	}
	return c.now().Sub(e.built) > c.ttl
}

// getOrBuild returns the cached value for key, or builds it. Concurrent
// builds of the same key share one call.
func (c *tableCache) getOrBuild(key string, build func() (*parsed, error)) (*parsed, error) {
	// Fast path: check if entry exists and is fresh
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if exists && !c.expired(entry) {
		return entry.value, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		entry, exists := c.entries[key]
		c.mu.RUnlock()

		if exists && !c.expired(entry) {
			return entry.value, nil
		}

		value, err := build()
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = cacheEntry{value: value, built: c.now()}
			c.mu.Unlock()
		}

		return value, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*parsed), nil
}

// prune drops expired entries.
func (c *tableCache) prune() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		if c.expired(entry) {
			delete(c.entries, key)
		}
	}
}
