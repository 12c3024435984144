package cache

import "time"

// Config represents cache configuration
type Config struct {
	// GoCache configuration
	GoCache GoCacheConfig `yaml:"go_cache"`
}

// GoCacheConfig configuration for in-memory go-cache
type GoCacheConfig struct {
	// DefaultExpiration is used for items stored without an explicit ttl
	DefaultExpiration time.Duration `yaml:"default_expiration"`

	// CleanupInterval interval for purging expired responses
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// Enabled whether responses are cached at all.
	// When false every fetch revalidates against upstream.
	Enabled bool `yaml:"enabled"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() Config {
	return Config{
		GoCache: GoCacheConfig{
			DefaultExpiration: 60 * time.Second,
			CleanupInterval:   5 * time.Minute,
			Enabled:           true,
		},
	}
}
