package config

import "time"

const (
	APIKeyTypeDemo = "demo"
	APIKeyTypePro  = "pro"
)

// CoinGeckoConfig defines how the dashboard reaches the CoinGecko API
type CoinGeckoConfig struct {
	// BaseURL including the API version, e.g. https://api.coingecko.com/api/v3
	BaseURL string `yaml:"base_url"`

	// APIKey sent with every request. Required.
	APIKey string `yaml:"api_key"`

	// APIKeyType selects the header the key is sent in: "demo" or "pro"
	APIKeyType string `yaml:"api_key_type"`

	// RateLimits per key type, applied at the transport
	RateLimits APIKeyConfig `yaml:"rate_limits"`

	// MaxRetries is the number of attempts for retryable statuses (429, 5xx).
	// 1 means a single attempt.
	MaxRetries int `yaml:"max_retries"`

	// BaseBackoff is the first retry delay, doubled on each attempt
	BaseBackoff time.Duration `yaml:"base_backoff"`

	// ConnectionTimeout for establishing the TCP connection
	ConnectionTimeout time.Duration `yaml:"connection_timeout"`

	// RequestTimeout including reading the response body
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// GetDefaultCoinGeckoConfig returns defaults for everything but the base URL and key
func GetDefaultCoinGeckoConfig() CoinGeckoConfig {
	return CoinGeckoConfig{
		APIKeyType:        APIKeyTypeDemo,
		MaxRetries:        1,
		BaseBackoff:       time.Second,
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

// ActiveRateLimit returns the limit for the configured key type
func (c CoinGeckoConfig) ActiveRateLimit() RateLimit {
	return c.RateLimits.For(c.APIKeyType)
}
