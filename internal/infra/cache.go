package infra

import (
	"container/list"
	"strings"
	"sync"
	"time"
)

// Cache size limits to prevent unbounded memory growth
const (
	DefaultMaxCacheEntries = 1000            // Maximum number of cache entries
	DefaultCacheCleanup    = 5 * time.Minute // How often to sweep expired entries
)

// cacheEntry is one memoized result
type cacheEntry struct {
	key       string
	data      any
	expiresAt time.Time
}

// CacheStats is a point-in-time snapshot of cache counters
type CacheStats struct {
	Size      int
	Hits      int64
	Misses    int64
	Evictions int64
}

// CacheOption configures a Cache
type CacheOption func(*Cache)

// WithEvictionHook registers a callback invoked with the number of entries
// evicted for capacity (not expiry).
func WithEvictionHook(fn func(n int)) CacheOption {
	return func(c *Cache) {
		c.onEvict = fn
	}
}

// WithCleanupInterval overrides how often expired entries are swept.
func WithCleanupInterval(d time.Duration) CacheOption {
	return func(c *Cache) {
		if d > 0 {
			c.cleanupEvery = d
		}
	}
}

// Cache is an LRU cache with per-entry TTL. The most recently used entry sits
// at the front of the list; capacity evictions take from the back.
type Cache struct {
	mu           sync.Mutex
	items        map[string]*list.Element
	order        *list.List
	maxEntries   int
	cleanupEvery time.Duration
	onEvict      func(n int)
	now          func() time.Time

	hits, misses, evictions int64

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewCache creates a new LRU cache with the specified max entries
func NewCache(maxEntries int, opts ...CacheOption) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxCacheEntries
	}
	c := &Cache{
		items:        make(map[string]*list.Element),
		order:        list.New(),
		maxEntries:   maxEntries,
		cleanupEvery: DefaultCacheCleanup,
		now:          time.Now,
		stopCh:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.cleanupLoop()
	return c
}

// Get retrieves a cached value if it exists and hasn't expired
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	entry := el.Value.(*cacheEntry)
	if c.now().After(entry.expiresAt) {
		c.removeElement(el)
		c.misses++
		return nil, false
	}
	c.order.MoveToFront(el)
	c.hits++
	return entry.data, true
}

// Set stores a value in the cache with the specified TTL
func (c *Cache) Set(key string, data any, ttl time.Duration) {
	c.mu.Lock()
	evicted := 0
	expiresAt := c.now().Add(ttl)
	if el, ok := c.items[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.data = data
		entry.expiresAt = expiresAt
		c.order.MoveToFront(el)
	} else {
		c.items[key] = c.order.PushFront(&cacheEntry{key: key, data: data, expiresAt: expiresAt})
		for c.order.Len() > c.maxEntries {
			c.removeElement(c.order.Back())
			evicted++
		}
		c.evictions += int64(evicted)
	}
	hook := c.onEvict
	c.mu.Unlock()

	if evicted > 0 && hook != nil {
		hook(evicted)
	}
}

// Delete removes a key from the cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
}

// DeletePrefix removes all cache entries with keys starting with prefix
func (c *Cache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, el := range c.items {
		if strings.HasPrefix(key, prefix) {
			c.removeElement(el)
		}
	}
}

// Size returns the current number of entries in the cache
func (c *Cache) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int64(c.order.Len())
}

// Stats returns hit, miss and eviction counters
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Size:      c.order.Len(),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// Close stops the background cleanup goroutine
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

func (c *Cache) removeElement(el *list.Element) {
	entry := c.order.Remove(el).(*cacheEntry)
	delete(c.items, entry.key)
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup drops expired entries
func (c *Cache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*cacheEntry).expiresAt) {
			c.removeElement(el)
		}
		el = prev
	}
}
