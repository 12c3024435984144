package config

import "math"

// Defaults in requests per minute, used when config is not provided
const (
	defaultProRPM  = 500
	defaultDemoRPM = 30
)

// APIKeyConfig configures rate limiting per CoinGecko key type
type APIKeyConfig struct {
	// Requests per minute and burst per type. If zero, defaults are used.
	Pro  RateLimit `yaml:"pro"`
	Demo RateLimit `yaml:"demo"`
}

// RateLimit represents a simple rpm + burst pair
type RateLimit struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	Burst              int `yaml:"burst"`
}

// For returns the limit for a key type name with defaults applied
func (c APIKeyConfig) For(keyType string) RateLimit {
	if keyType == APIKeyTypePro {
		return c.Pro.withDefaults(defaultProRPM)
	}
	return c.Demo.withDefaults(defaultDemoRPM)
}

// PerSecond converts the per-minute limit
func (r RateLimit) PerSecond() float64 {
	return float64(r.RateLimitPerMinute) / 60.0
}

func (r RateLimit) withDefaults(defaultRPM int) RateLimit {
	if r.RateLimitPerMinute <= 0 {
		r.RateLimitPerMinute = defaultRPM
	}
	if r.Burst <= 0 {
		perSecond := r.PerSecond()
		if perSecond <= 1.0 {
			r.Burst = 1
		} else {
			r.Burst = int(math.Ceil(perSecond))
		}
	}
	return r
}
