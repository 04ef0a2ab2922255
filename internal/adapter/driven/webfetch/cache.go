package webfetch

import (
	"github.com/gregjones/httpcache"
	lru "github.com/hashicorp/golang-lru/v2"
)

var _ httpcache.Cache = (*lruCache)(nil)

// lruCache is an httpcache.Cache holding at most a fixed number of responses.
// The least recently used response is evicted first.
type lruCache struct {
	entries *lru.Cache[string, []byte]
}

func newLRUCache(size int) (*lruCache, error) {
	entries, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &lruCache{entries: entries}, nil
}

// Get returns the cached response for key.
func (c *lruCache) Get(key string) ([]byte, bool) {
	return c.entries.Get(key)
}

// Set stores a response, evicting the oldest one when full.
func (c *lruCache) Set(key string, resp []byte) {
	c.entries.Add(key, resp)
}

// Delete removes key from the cache.
func (c *lruCache) Delete(key string) {
	c.entries.Remove(key)
}

// Len reports how many responses are cached.
func (c *lruCache) Len() int {
	return c.entries.Len()
}
