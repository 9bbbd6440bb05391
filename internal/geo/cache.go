package geo

import (
	"strings"
	"sync"

	"rideconnect/internal/domain"
)

// queryCache is a bounded FIFO cache of successful geocode lookups keyed by
// normalized query text. Request variety is low, so FIFO eviction is enough;
// no LRU bookkeeping needed.
type queryCache struct {
	mu       sync.Mutex
	entries  map[string]domain.Coordinates
	order    []string
	capacity int
}

func newQueryCache(capacity int) *queryCache {
	if capacity <= 0 {
		capacity = 100
	}
	return &queryCache{
		entries:  make(map[string]domain.Coordinates),
		capacity: capacity,
	}
}

// normalizeQuery produces the cache key for a raw address string.
func normalizeQuery(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func (c *queryCache) Get(key string) (domain.Coordinates, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	coords, ok := c.entries[key]
	return coords, ok
}

func (c *queryCache) Put(key string, coords domain.Coordinates) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = coords
		return
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = coords
	c.order = append(c.order, key)
}

func (c *queryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
