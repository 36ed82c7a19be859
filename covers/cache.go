package covers

import (
	"sync"

	"github.com/treygoff24/site/models"
)

// Cache holds the in-memory copy of the persisted cover map for
// render-time lookups. It is replaced wholesale after a successful
// regeneration, never mutated entry by entry.
type Cache struct {
	mu sync.RWMutex
	m  models.CoverMap
}

// NewCache creates a Cache seeded with m (may be nil or empty).
func NewCache(m models.CoverMap) *Cache {
	if m == nil {
		m = models.CoverMap{}
	}
	return &Cache{m: m}
}

// Get returns the cover URL for the appearance ID, if present.
func (c *Cache) Get(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	url, ok := c.m[id]
	return url, ok
}

// Replace swaps in a freshly generated map.
func (c *Cache) Replace(m models.CoverMap) {
	if m == nil {
		m = models.CoverMap{}
	}
	c.mu.Lock()
	c.m = m
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
