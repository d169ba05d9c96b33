// Package urlcache caches presigned download URLs so repeated
// listings of the same objects do not re-sign every key. An entry is
// only kept for a small fraction of the URL lifetime, so a cached URL
// still carries most of its validity when handed out.
package urlcache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// ttlFraction divides the URL lifetime to get the cache TTL. With a
// tenth of the lifetime as TTL, a URL served from the cache always
// has at least nine tenths of its validity left.
const ttlFraction = 10

type Cache struct {
	c *cache.Cache
}

// New creates a cache for URLs that expire after urlExpiry.
func New(urlExpiry time.Duration) *Cache {
	ttl := urlExpiry / ttlFraction
	if ttl <= 0 {
		ttl = time.Second
	}
	return &Cache{
		c: cache.New(ttl, 2*ttl),
	}
}

func (uc *Cache) Get(key string) (string, bool) {
	v, ok := uc.c.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (uc *Cache) Set(key, url string) {
	uc.c.Set(key, url, cache.DefaultExpiration)
}

func (uc *Cache) Invalidate(key string) {
	uc.c.Delete(key)
}

func (uc *Cache) Len() int {
	return uc.c.ItemCount()
}
