// Package cache provides the request-scoped query cache behind the catalog
// view. It is an explicit object handed to whoever needs it - no package
// globals - so tests can build isolated instances and the staleness window
// can differ per query.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchFunc loads a value when the cache has no fresh entry for its key.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value     any
	fetchedAt time.Time
}

// QueryCache is a TTL cache with in-flight de-duplication. Concurrent callers
// asking for the same key while a fetch is running share that fetch's result;
// distinct keys never wait on each other. Errors are not cached.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group

	// now is swappable for tests
	now func() time.Time
}

func New() *QueryCache {
	return &QueryCache{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key if it is younger than staleAfter;
// otherwise it runs fetch (once across concurrent callers) and stores the
// result. Keys are expected to be built from the query name plus exactly the
// parameters that query depends on.
func (c *QueryCache) Get(ctx context.Context, key string, staleAfter time.Duration, fetch FetchFunc) (any, error) {
	if v, ok := c.lookup(key, staleAfter); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// another caller may have filled the entry while we queued
		if v, ok := c.lookup(key, staleAfter); ok {
			return v, nil
		}
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})
	return v, err
}

// Invalidate drops a single key. Siblings are untouched.
func (c *QueryCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidateAll empties the cache.
func (c *QueryCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}

func (c *QueryCache) lookup(key string, staleAfter time.Duration) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.entries[key]; ok && c.now().Sub(e.fetchedAt) < staleAfter {
		return e.value, true
	}
	return nil, false
}

func (c *QueryCache) store(key string, v any) {
	c.mu.Lock()
	c.entries[key] = &entry{value: v, fetchedAt: c.now()}
	c.mu.Unlock()
}
