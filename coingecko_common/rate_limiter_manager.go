package coingecko_common

import (
	"net/http"
	"strings"
	"sync"

	"github.com/status-im/market-dashboard/config"
	"golang.org/x/time/rate"
)

// IRateLimiterManager provides a way to get a rate limiter for an outgoing request
//
//go:generate mockgen -destination=mocks/rate_limiter_manager.go . IRateLimiterManager
type IRateLimiterManager interface {
	GetLimiterForRequest(req *http.Request) *rate.Limiter
	SetConfig(cfg config.APIKeyConfig)
}

// RateLimiterManager manages per-key rate limiters using APIKeyConfig.
// One manager is shared by every fetcher so limits hold process-wide.
type RateLimiterManager struct {
	mu           sync.RWMutex
	keyToLimiter map[string]*rate.Limiter
	config       config.APIKeyConfig
}

// NewRateLimiterManager creates a manager for the given limits
func NewRateLimiterManager(cfg config.APIKeyConfig) *RateLimiterManager {
	return &RateLimiterManager{
		keyToLimiter: make(map[string]*rate.Limiter),
		config:       cfg,
	}
}

// SetConfig applies a new APIKeyConfig and rebuilds existing limiters
func (m *RateLimiterManager) SetConfig(newCfg config.APIKeyConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = newCfg
	for mapKey := range m.keyToLimiter {
		m.keyToLimiter[mapKey] = m.newLimiterLocked(parseKeyType(mapKey))
	}
}

// GetLimiterForRequest inspects the API key headers and returns the limiter
// for that key. Requests without a CoinGecko key header are not limited.
func (m *RateLimiterManager) GetLimiterForRequest(req *http.Request) *rate.Limiter {
	if m == nil || req == nil {
		return nil
	}

	if v := req.Header.Get(ProAPIKeyHeader); v != "" {
		return m.getLimiterForKey(v, ProKey)
	}
	if v := req.Header.Get(DemoAPIKeyHeader); v != "" {
		return m.getLimiterForKey(v, DemoKey)
	}

	return nil
}

// getLimiterForKey returns a limiter for a given api key and type, creating it if missing
func (m *RateLimiterManager) getLimiterForKey(key string, keyType KeyType) *rate.Limiter {
	mapKey := limiterMapKey(key, keyType)

	m.mu.RLock()
	if lim, ok := m.keyToLimiter[mapKey]; ok {
		m.mu.RUnlock()
		return lim
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if lim, ok := m.keyToLimiter[mapKey]; ok {
		return lim
	}

	limiter := m.newLimiterLocked(keyType)
	m.keyToLimiter[mapKey] = limiter
	return limiter
}

func (m *RateLimiterManager) newLimiterLocked(keyType KeyType) *rate.Limiter {
	limit := m.config.For(keyType.String())
	return rate.NewLimiter(rate.Limit(limit.PerSecond()), limit.Burst)
}

func limiterMapKey(key string, keyType KeyType) string {
	return "type:" + keyType.String() + "|key:" + key
}

func parseKeyType(mapKey string) KeyType {
	if strings.HasPrefix(mapKey, "type:"+config.APIKeyTypePro+"|") {
		return ProKey
	}
	return DemoKey
}
