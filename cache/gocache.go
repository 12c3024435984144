package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// GoCache simple in-memory byte cache on top of go-cache
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache creates a new GoCache instance
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get returns the value stored under key.
// Values that are not []byte are treated as missing.
func (gc *GoCache) Get(key string) ([]byte, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return nil, false
	}
	data, ok := value.([]byte)
	if !ok {
		return nil, false
	}
	return data, true
}

// Set stores value under key with the given timeout
func (gc *GoCache) Set(key string, value []byte, timeout time.Duration) {
	gc.cache.Set(key, value, timeout)
}

// Delete removes items from cache by keys
func (gc *GoCache) Delete(keys ...string) {
	for _, key := range keys {
		gc.cache.Delete(key)
	}
}

// Clear removes all items from cache
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

// ItemCount returns the number of items in cache, including expired ones
// that have not been cleaned up yet
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}
