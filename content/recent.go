package content

import "sync"

// defaultRecentSize is how many recently served message IDs each bucket
// remembers. Pools hold four messages, so remembering the last two still
// leaves candidates after exclusion.
const defaultRecentSize = 2

// RecentCache is a small rolling window of recently served message IDs per
// bucket, used to bias selection away from immediate repeats. It lives for
// the process only and is never persisted.
type RecentCache struct {
	mu      sync.Mutex
	size    int
	buckets map[string][]string
}

// NewRecentCache creates a cache remembering size IDs per bucket. A
// non-positive size selects the default.
func NewRecentCache(size int) *RecentCache {
	if size <= 0 {
		size = defaultRecentSize
	}
	return &RecentCache{
		size:    size,
		buckets: make(map[string][]string),
	}
}

// Contains reports whether id was served recently for bucket.
func (c *RecentCache) Contains(bucket, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, recent := range c.buckets[bucket] {
		if recent == id {
			return true
		}
	}
	return false
}

// Record notes that id was served for bucket, evicting the oldest entry once
// the window is full.
func (c *RecentCache) Record(bucket, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	window := append(c.buckets[bucket], id)
	if len(window) > c.size {
		window = window[len(window)-c.size:]
	}
	c.buckets[bucket] = window
}

// Reset clears the cache. Tests call this for deterministic runs.
func (c *RecentCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buckets = make(map[string][]string)
}
