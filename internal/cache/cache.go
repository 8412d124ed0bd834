package cache

import (
	"errors"
	"fmt"
	"math"
)

// NotFound is what Lookup returns for an absent key.
// It is only unambiguous when stored values are non-negative; prefer Get.
const NotFound = -1

// Config controls cache capacity.
//
// Capacity must be in [1, math.MaxInt32]. There is no unbounded mode.
type Config struct {
	Capacity int
}

// Cache is a fixed-capacity LRU cache.
//
// The core design is intentionally explicit:
// a map gives O(1) key lookup, and a slot-based doubly-linked list maintains
// recency ordering. The map stores handles into the list, never entries.
//
// Cache is not safe for concurrent use.
type Cache struct {
	capacity int
	items    map[int]int32
	lru      recency
}

var ErrInvalidCapacity = errors.New("capacity must be positive")

// New constructs a cache holding at most cfg.Capacity entries.
func New(cfg Config) (*Cache, error) {
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("new cache (capacity=%d): %w", cfg.Capacity, ErrInvalidCapacity)
	}
	if cfg.Capacity > math.MaxInt32 {
		return nil, fmt.Errorf("new cache (capacity=%d exceeds %d): %w", cfg.Capacity, math.MaxInt32, ErrInvalidCapacity)
	}

	return &Cache{
		capacity: cfg.Capacity,
		items:    make(map[int]int32, min(cfg.Capacity, 1024)),
		lru:      newRecency(cfg.Capacity),
	}, nil
}

// Get reads a key and marks it most recently used.
//
// A miss returns (0, false) and leaves the cache untouched.
func (c *Cache) Get(key int) (int, bool) {
	h, ok := c.items[key]
	if !ok {
		return 0, false
	}
	c.lru.moveToFront(h)
	return c.lru.slots[h].value, true
}

// Lookup is Get with a sentinel: it returns NotFound on a miss.
func (c *Cache) Lookup(key int) int {
	if v, ok := c.Get(key); ok {
		return v
	}
	return NotFound
}

// Put writes/overwrites a key and marks it most recently used.
//
// Overwriting never evicts. Inserting a new key into a full cache evicts the
// least recently used entry first.
//
// Complexity: O(1).
func (c *Cache) Put(key, value int) {
	if h, ok := c.items[key]; ok {
		// Updating counts as use; move to MRU.
		c.lru.slots[h].value = value
		c.lru.moveToFront(h)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}
	c.items[key] = c.lru.pushFront(key, value)
}

// Peek reads a key without touching its recency.
func (c *Cache) Peek(key int) (int, bool) {
	h, ok := c.items[key]
	if !ok {
		return 0, false
	}
	return c.lru.slots[h].value, true
}

// Oldest returns the entry the next eviction would remove.
func (c *Cache) Oldest() (key, value int, ok bool) {
	h := c.lru.back()
	if h == nilSlot {
		return 0, 0, false
	}
	s := c.lru.slots[h]
	return s.key, s.value, true
}

// Len returns the number of resident entries.
func (c *Cache) Len() int { return len(c.items) }

// Cap returns the configured capacity.
func (c *Cache) Cap() int { return c.capacity }

// Keys returns keys in MRU -> LRU order.
//
// This is a debug helper used by the scenario driver.
func (c *Cache) Keys() []int {
	out := make([]int, 0, c.lru.len())
	for h := c.lru.head; h != nilSlot; h = c.lru.slots[h].next {
		out = append(out, c.lru.slots[h].key)
	}
	return out
}

// evictOldest drops the LRU entry from both the list and the index.
// Callers guarantee the cache is non-empty.
func (c *Cache) evictOldest() {
	h := c.lru.back()
	if h == nilSlot {
		return
	}
	delete(c.items, c.lru.slots[h].key)
	c.lru.release(h)
}
