package qrimage

import (
	"sync"
	"time"
)

type cacheKey struct {
	format  Format
	level   Level
	size    int
	content string
}

type cachedImage struct {
	data     []byte
	cachedAt time.Time
}

// Cache memoizes rendered images for a short time. It is bounded: once full,
// the oldest entry is dropped to make room.
type Cache struct {
	mu         sync.Mutex
	store      map[cacheKey]*cachedImage
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewCache(ttl time.Duration, maxEntries int) *Cache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Cache{
		store:      make(map[cacheKey]*cachedImage),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *Cache) Get(key cacheKey) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	img, ok := c.store[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(img.cachedAt) > c.ttl {
		delete(c.store, key)
		return nil, false
	}

	return img.data, true
}

func (c *Cache) Set(key cacheKey, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.store[key]; !exists && len(c.store) >= c.maxEntries {
		c.evictOldest()
	}
	c.store[key] = &cachedImage{data: data, cachedAt: c.now()}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.store)
}

func (c *Cache) evictOldest() {
	var (
		oldestKey cacheKey
		oldestAt  time.Time
		found     bool
	)
	for k, v := range c.store {
		if !found || v.cachedAt.Before(oldestAt) {
			oldestKey, oldestAt, found = k, v.cachedAt, true
		}
	}
	if found {
		delete(c.store, oldestKey)
	}
}
