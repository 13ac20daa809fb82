package resolve

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes successful resolutions per path.
// Concurrent resolutions of the same path share a single call to the
// wrapped Resolver. Failed resolutions are not stored.
type Cache struct {
	next Resolver

	mu     sync.RWMutex
	values map[string]any
	group  singleflight.Group
}

// NewCache wraps next with a per-path cache.
func NewCache(next Resolver) *Cache {
	return &Cache{
		next:   next,
		values: make(map[string]any),
	}
}

// Resolve returns the cached value for path, resolving it through the wrapped
// Resolver on a miss.
func (c *Cache) Resolve(path string) (any, error) {
	c.mu.RLock()
	v, ok := c.values[path]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err, _ := c.group.Do(path, func() (any, error) {
		val, err := c.next.Resolve(path)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.values[path] = val
		c.mu.Unlock()
		return val, nil
	})
	if err != nil {
		return nil, newResolutionError(path, err)
	}
	return v, nil
}

// Forget drops the cached value for path, if any.
func (c *Cache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, path)
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

var defaultResolver = sync.OnceValue(func() *Cache {
	return NewCache(NewRegistry())
})

// Default returns the process-wide cached Registry.
func Default() *Cache {
	return defaultResolver()
}
