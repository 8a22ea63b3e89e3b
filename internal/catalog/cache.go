// Package catalog provides the read-mostly collection caches the browse and
// admin views filter against. Every mutation to a collection is followed by
// a full reload of its cache, so reads after a write always observe it.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// LoadFunc fetches the full contents of a collection from the backing store.
type LoadFunc[T any] func(ctx context.Context) ([]T, error)

// Cache holds an atomically-replaced snapshot of one collection. A failed
// reload leaves the previous contents in place; callers surface the error
// and keep serving stale data.
type Cache[T any] struct {
	name string

	mu       sync.RWMutex
	items    []T
	loadedAt time.Time
	loaded   bool
}

// NewCache creates an empty cache for the named collection.
func NewCache[T any](name string) *Cache[T] {
	return &Cache[T]{name: name}
}

// Name returns the collection name the cache was created with.
func (c *Cache[T]) Name() string {
	return c.name
}

// Reload replaces the cache contents with the result of load. On error the
// previous contents remain untouched and the error is returned.
func (c *Cache[T]) Reload(ctx context.Context, load LoadFunc[T]) error {
	items, err := load(ctx)
	if err != nil {
		return fmt.Errorf("reload %s: %w", c.name, err)
	}

	c.mu.Lock()
	c.items = items
	c.loadedAt = time.Now().UTC()
	c.loaded = true
	c.mu.Unlock()

	return nil
}

// Snapshot returns a copy of the cached items. Mutating the returned slice
// does not affect the cache.
func (c *Cache[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of cached items.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Loaded reports whether at least one reload has succeeded.
func (c *Cache[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// LoadedAt returns the time of the last successful reload, zero if none.
func (c *Cache[T]) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}
