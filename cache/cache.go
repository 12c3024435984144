package cache

import "time"

// LoaderFunc loads the value for a key that is missing from the cache
type LoaderFunc func() ([]byte, error)

// Cache is the response cache used to honour revalidation hints.
// Entries are raw response bodies keyed by the final request URL.
type Cache interface {
	// Get returns the cached body for key, if present and not expired
	Get(key string) ([]byte, bool)

	// Set stores data under key for ttl.
	// A non-positive ttl means "do not cache" and is a no-op.
	Set(key string, data []byte, ttl time.Duration)

	// GetOrLoad returns the cached body for key or calls loader and stores
	// its result for ttl.
	//
	// Returns:
	// - []byte: the body
	// - bool: true when the body was served from cache
	// - error: loader error, nothing is cached in that case
	GetOrLoad(key string, loader LoaderFunc, ttl time.Duration) ([]byte, bool, error)
}
