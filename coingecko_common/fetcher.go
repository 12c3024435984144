package coingecko_common

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/cache"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/metrics"
)

// DefaultRevalidateSeconds is the revalidation hint used when a caller has no opinion
const DefaultRevalidateSeconds = 60

// IFetcher performs GET requests against the CoinGecko API
//
//go:generate mockgen -destination=mocks/fetcher.go . IFetcher
type IFetcher interface {
	// Fetch returns the raw JSON body of endpoint. Responses are reused for
	// revalidateSeconds; 0 always goes upstream and never caches.
	Fetch(ctx context.Context, endpoint string, params QueryParams, revalidateSeconds int) ([]byte, error)
}

// Fetcher is the single HTTP boundary to CoinGecko
type Fetcher struct {
	baseURL       string
	apiKey        string
	keyType       KeyType
	httpClient    *HTTPClientWithRetries
	cache         cache.Cache
	metricsWriter *metrics.MetricsWriter
	logger        *zap.Logger
}

// NewFetcher creates a fetcher for cfg. cfg must carry the base URL and key;
// the cache may be nil to disable revalidation entirely.
func NewFetcher(cfg config.CoinGeckoConfig, responseCache cache.Cache, limiterManager IRateLimiterManager,
	metricsWriter *metrics.MetricsWriter, logger *zap.Logger) (*Fetcher, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: coingecko base url", config.ErrConfigurationMissing)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: coingecko api key", config.ErrConfigurationMissing)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	opts := DefaultRetryOptions()
	if cfg.MaxRetries > 0 {
		opts.MaxRetries = cfg.MaxRetries
	}
	if cfg.BaseBackoff > 0 {
		opts.BaseBackoff = cfg.BaseBackoff
	}
	if cfg.ConnectionTimeout > 0 {
		opts.ConnectionTimeout = cfg.ConnectionTimeout
	}
	if cfg.RequestTimeout > 0 {
		opts.RequestTimeout = cfg.RequestTimeout
	}

	var statusHandler IHttpStatusHandler
	if metricsWriter != nil {
		opts.LogPrefix = "CoinGecko " + metricsWriter.GetServiceName()
		statusHandler = metricsWriter
	}

	return &Fetcher{
		baseURL:       cfg.BaseURL,
		apiKey:        cfg.APIKey,
		keyType:       KeyTypeFromConfig(cfg.APIKeyType),
		httpClient:    NewHTTPClientWithRetries(opts, statusHandler, limiterManager, logger),
		cache:         responseCache,
		metricsWriter: metricsWriter,
		logger:        logger,
	}, nil
}

// Fetch implements IFetcher
func (f *Fetcher) Fetch(ctx context.Context, endpoint string, params QueryParams, revalidateSeconds int) ([]byte, error) {
	builder := NewCoingeckoRequestBuilder(f.baseURL, endpoint).
		WithParams(params).
		WithApiKey(f.apiKey, f.keyType)
	requestURL := builder.BuildURL()
	ttl := time.Duration(revalidateSeconds) * time.Second

	load := func() ([]byte, error) {
		req, err := builder.BuildWithURL(ctx, requestURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		body, duration, err := f.httpClient.ExecuteRequest(req)
		if err != nil {
			f.logger.Warn("coingecko request failed",
				zap.String("endpoint", endpoint),
				zap.Error(err))
			return nil, err
		}

		if f.metricsWriter != nil {
			f.metricsWriter.RecordRequestLatency(endpointLabel(endpoint), duration)
		}

		// Never cache a body that callers cannot decode
		if !json.Valid(body) {
			return nil, fmt.Errorf("%w: %s returned invalid JSON", ErrMalformedResponse, endpoint)
		}

		f.logger.Debug("coingecko request",
			zap.String("endpoint", endpoint),
			zap.Duration("duration", duration),
			zap.Int("bytes", len(body)))
		return body, nil
	}

	if f.cache == nil || ttl <= 0 {
		return load()
	}

	body, cached, err := f.cache.GetOrLoad(requestURL, load, ttl)
	if f.metricsWriter != nil && err == nil {
		f.metricsWriter.RecordCacheLookup(cached)
	}
	if err != nil {
		return nil, err
	}
	if cached {
		f.logger.Debug("coingecko response served from cache", zap.String("endpoint", endpoint))
	}
	return body, nil
}

// FetchJSON fetches endpoint and decodes the body into T without schema validation
func FetchJSON[T any](ctx context.Context, fetcher IFetcher, endpoint string, params QueryParams, revalidateSeconds int) (T, error) {
	var result T

	body, err := fetcher.Fetch(ctx, endpoint, params, revalidateSeconds)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, endpoint, err)
	}

	return result, nil
}

// endpointLabel reduces an endpoint to a low-cardinality metric label:
// path segments after a known collection name are replaced with ":id".
func endpointLabel(endpoint string) string {
	segments := strings.Split(strings.Trim(endpoint, "/"), "/")
	for i := 1; i < len(segments); i++ {
		switch segments[i-1] {
		case "coins", "networks", "tokens", "pools":
			if !isCollectionName(segments[i]) {
				segments[i] = ":id"
			}
		}
	}
	return strings.Join(segments, "/")
}

func isCollectionName(segment string) bool {
	switch segment {
	case "markets", "categories", "list", "ohlc", "info", "pools", "tokens", "search", "trending":
		return true
	}
	return false
}
