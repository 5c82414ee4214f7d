package processor

import (
	"time"

	"github.com/ethereum/go-ethereum/common/lru"
	"github.com/google/uuid"
)

const (
	DefaultCacheSize = 10000
	DefaultCacheTTL  = 5 * time.Minute
)

type cacheEntry struct {
	referrerID *uuid.UUID
	expiresAt  time.Time
}

// LRUCache is a bounded, process-local referrer cache whose entries expire after a TTL.
type LRUCache struct {
	entries *lru.Cache[string, cacheEntry]
	ttl     time.Duration
	now     func() time.Time
}

// NewLRUCache creates a cache holding at most size entries, each valid for ttl.
func NewLRUCache(size int, ttl time.Duration) *LRUCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &LRUCache{
		entries: lru.NewCache[string, cacheEntry](size),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached referrer for key. Expired entries are evicted and reported as absent.
func (c *LRUCache) Get(key string) (*uuid.UUID, bool) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if !c.now().Before(entry.expiresAt) {
		c.entries.Remove(key)
		return nil, false
	}
	return entry.referrerID, true
}

// Add caches referrerID for key. A nil referrerID records that the identity has no referrer.
func (c *LRUCache) Add(key string, referrerID *uuid.UUID) {
	c.entries.Add(key, cacheEntry{referrerID: referrerID, expiresAt: c.now().Add(c.ttl)})
}

// Len reports the number of cached entries, including expired ones not yet evicted.
func (c *LRUCache) Len() int {
	return c.entries.Len()
}

// CacheKey builds the cache key for an identity's referrer within a merchant.
func CacheKey(merchantID, identityGroupID uuid.UUID) string {
	return merchantID.String() + ":" + identityGroupID.String()
}
