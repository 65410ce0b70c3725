package simulation

import (
	"sync"

	"exec-planner/internal/domain"
)

// Cache memoizes simulation results by quote key. When the cache fills
// it resets wholesale; quote computation is cheap enough that eviction
// bookkeeping is not worth carrying.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*domain.SimulationResult
	maxSize int

	hits   uint64
	misses uint64
}

// NewCache creates a cache bounded to maxSize entries.
func NewCache(maxSize int) *Cache {
	return &Cache{
		entries: make(map[string]*domain.SimulationResult),
		maxSize: maxSize,
	}
}

// Get returns the memoized result for key, if present.
func (c *Cache) Get(key string) (*domain.SimulationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return result, ok
}

// Put stores a result under key.
func (c *Cache) Put(key string, result *domain.SimulationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.entries = make(map[string]*domain.SimulationResult)
	}
	c.entries[key] = result
}

// Stats reports cumulative hit and miss counts.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Len reports the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
