package research

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache configuration constants.
const (
	// DefaultCacheSize bounds the number of cached research results.
	// Eviction beyond TTL expiry is LRU; staleness is already bounded
	// by the TTL so the policy only limits memory.
	DefaultCacheSize = 512

	// DefaultCacheTTL is the lifetime of a cached research result.
	DefaultCacheTTL = 3600 * time.Second
)

// ResultCache is the cache layer wrapping the research pipeline.
// A hit short-circuits the entire pipeline; a miss is never
// negative-cached. Implementations must treat store failures as misses.
type ResultCache interface {
	Get(fingerprint string) (*ResearchResult, bool)
	Put(fingerprint string, result *ResearchResult)
}

// LRUCache is an in-memory ResultCache with TTL-bound entries and
// LRU eviction when the size bound is reached.
type LRUCache struct {
	inner *expirable.LRU[string, *ResearchResult]
}

var _ ResultCache = (*LRUCache)(nil)

// NewLRUCache creates a result cache with the given bounds.
// Non-positive size or TTL fall back to the defaults.
func NewLRUCache(size int, ttl time.Duration) *LRUCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &LRUCache{
		inner: expirable.NewLRU[string, *ResearchResult](size, nil, ttl),
	}
}

// Get returns the cached result for a fingerprint, if present and fresh.
func (c *LRUCache) Get(fingerprint string) (*ResearchResult, bool) {
	return c.inner.Get(fingerprint)
}

// Put stores a result under its fingerprint. The stored result is shared
// read-only from this point on; callers must not mutate it afterwards.
func (c *LRUCache) Put(fingerprint string, result *ResearchResult) {
	c.inner.Add(fingerprint, result)
}

// Len returns the number of live cache entries.
func (c *LRUCache) Len() int {
	return c.inner.Len()
}
