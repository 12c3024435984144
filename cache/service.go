package cache

import (
	"context"
	"fmt"
	"time"
)

// Service implements Cache with go-cache
type Service struct {
	goCache *GoCache
	config  Config
}

// NewService creates a new cache service with the given configuration
func NewService(config Config) *Service {
	var goCache *GoCache
	if config.GoCache.Enabled {
		goCache = NewGoCache(config.GoCache.DefaultExpiration, config.GoCache.CleanupInterval)
	}

	return &Service{
		goCache: goCache,
		config:  config,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.config.GoCache.Enabled && s.goCache == nil {
		return fmt.Errorf("cache service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	s.Clear()
}

// Get implements Cache
func (s *Service) Get(key string) ([]byte, bool) {
	if s.goCache == nil {
		return nil, false
	}
	return s.goCache.Get(key)
}

// Set implements Cache
func (s *Service) Set(key string, data []byte, ttl time.Duration) {
	if s.goCache == nil || ttl <= 0 {
		return
	}
	s.goCache.Set(key, data, ttl)
}

// GetOrLoad implements Cache
func (s *Service) GetOrLoad(key string, loader LoaderFunc, ttl time.Duration) ([]byte, bool, error) {
	if ttl > 0 {
		if data, ok := s.Get(key); ok {
			return data, true, nil
		}
	}

	// loader errors are returned as is so callers can match them
	data, err := loader()
	if err != nil {
		return nil, false, err
	}

	s.Set(key, data, ttl)
	return data, false, nil
}

// Stats returns statistics about the cache service
func (s *Service) Stats() ServiceStats {
	items := 0
	if s.goCache != nil {
		items = s.goCache.ItemCount()
	}
	return ServiceStats{
		GoCacheItems: items,
		Enabled:      s.config.GoCache.Enabled,
	}
}

// ServiceStats represents cache service statistics
type ServiceStats struct {
	GoCacheItems int  // Number of items in go-cache
	Enabled      bool // Whether go-cache is enabled
}

// Delete removes items from cache by keys
func (s *Service) Delete(keys ...string) {
	if s.goCache != nil {
		s.goCache.Delete(keys...)
	}
}

// Clear removes all items from cache
func (s *Service) Clear() {
	if s.goCache != nil {
		s.goCache.Clear()
	}
}
