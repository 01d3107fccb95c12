package cache

import (
	"container/list"
	"sync"
	"time"
)

type entry struct {
	key       uint64
	value     any
	expiresAt time.Time
}

// LRU is a bounded, optionally TTL-expiring cache keyed by a 64-bit
// fingerprint, backed by a container/list for O(1) recency updates and a
// map for O(1) lookup. No third-party LRU implementation (e.g.
// hashicorp/golang-lru) appears anywhere in the retrieved example pack, so
// this is hand-rolled over the standard library; see DESIGN.md.
type LRU struct {
	mu       sync.Mutex
	name     string
	capacity int
	ttl      time.Duration
	ll       *list.List
	items    map[uint64]*list.Element
	metrics  *tierMetrics
}

// NewLRU builds a cache tier named name (used as the prometheus metric
// label) with the given maximum entry count and, if ttl > 0, per-entry
// expiry.
func NewLRU(name string, capacity int, ttl time.Duration) *LRU {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRU{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		items:    make(map[uint64]*list.Element, capacity),
		metrics:  metricsFor(name),
	}
}

// Get returns the cached value for key, reporting a hit/miss to the
// tier's metrics and evicting the entry if it has expired.
func (c *LRU) Get(key uint64) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.metrics.misses.Inc()
		return nil, false
	}
	e := el.Value.(*entry)
	if c.ttl > 0 && time.Now().After(e.expiresAt) {
		c.removeElement(el)
		c.metrics.misses.Inc()
		c.metrics.evictions.Inc()
		return nil, false
	}
	c.ll.MoveToFront(el)
	c.metrics.hits.Inc()
	return e.value, true
}

// Put inserts or refreshes key's value, evicting the least-recently-used
// entry if the cache is at capacity.
func (c *LRU) Put(key uint64, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = time.Now().Add(c.ttl)
	}

	if el, ok := c.items[key]; ok {
		el.Value.(*entry).value = value
		el.Value.(*entry).expiresAt = expiresAt
		c.ll.MoveToFront(el)
		return
	}

	el := c.ll.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
	c.items[key] = el

	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.removeElement(oldest)
			c.metrics.evictions.Inc()
		}
	}
}

// Invalidate clears every entry, used when the schema metadata store's
// version advances (a DDL statement ran) and every cached translation/plan
// could now be stale.
func (c *LRU) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[uint64]*list.Element, c.capacity)
}

// TrimHalf evicts the least-recently-used half of the cache's entries,
// called by the buffer Monitor when bytes-in-use crosses a cleanup
// threshold (spec.md §4.2, §4.6).
func (c *LRU) TrimHalf() {
	c.mu.Lock()
	defer c.mu.Unlock()
	target := c.ll.Len() / 2
	for i := 0; i < target; i++ {
		oldest := c.ll.Back()
		if oldest == nil {
			break
		}
		c.removeElement(oldest)
		c.metrics.evictions.Inc()
	}
}

// Len reports the current entry count.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *LRU) removeElement(el *list.Element) {
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
