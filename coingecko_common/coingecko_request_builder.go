package coingecko_common

import (
	"context"
	"net/http"
)

// CoingeckoRequestBuilder implements the Builder pattern for CoinGecko API requests
type CoingeckoRequestBuilder struct {
	baseURL    string
	httpMethod string
	endpoint   string
	params     QueryParams
	apiKey     string
	keyType    KeyType
	userAgent  string
	headers    map[string]string
}

// NewCoingeckoRequestBuilder creates a new request builder for a CoinGecko endpoint
func NewCoingeckoRequestBuilder(baseURL, endpoint string) *CoingeckoRequestBuilder {
	rb := &CoingeckoRequestBuilder{
		baseURL:    baseURL,
		endpoint:   endpoint,
		httpMethod: http.MethodGet,
		params:     make(QueryParams),
		headers:    make(map[string]string),
		userAgent:  "Mozilla/5.0 Market-Dashboard",
	}

	rb.headers["Accept"] = "application/json"
	rb.headers["Content-Type"] = "application/json"

	return rb
}

// With adds a custom parameter to the URL query
func (rb *CoingeckoRequestBuilder) With(key string, value any) *CoingeckoRequestBuilder {
	rb.params[key] = value
	return rb
}

// WithParams merges params into the URL query
func (rb *CoingeckoRequestBuilder) WithParams(params QueryParams) *CoingeckoRequestBuilder {
	for key, value := range params {
		rb.params[key] = value
	}
	return rb
}

// WithApiKey sets the API key and its type
func (rb *CoingeckoRequestBuilder) WithApiKey(apiKey string, keyType KeyType) *CoingeckoRequestBuilder {
	if apiKey != "" {
		rb.apiKey = apiKey
		rb.keyType = keyType
	}
	return rb
}

// WithHeader adds a custom HTTP header
func (rb *CoingeckoRequestBuilder) WithHeader(name, value string) *CoingeckoRequestBuilder {
	rb.headers[name] = value
	return rb
}

// WithUserAgent sets the User-Agent header
func (rb *CoingeckoRequestBuilder) WithUserAgent(userAgent string) *CoingeckoRequestBuilder {
	rb.userAgent = userAgent
	return rb
}

// GetApiKey returns the API key and its type
func (rb *CoingeckoRequestBuilder) GetApiKey() (string, KeyType) {
	return rb.apiKey, rb.keyType
}

// BuildURL builds the complete URL for the request.
// The key travels in a header so the URL is safe to use as a cache key.
func (rb *CoingeckoRequestBuilder) BuildURL() string {
	return BuildURL(rb.baseURL, rb.endpoint, rb.params)
}

// Build creates an http.Request bound to ctx
func (rb *CoingeckoRequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	return rb.BuildWithURL(ctx, rb.BuildURL())
}

func (rb *CoingeckoRequestBuilder) BuildWithURL(ctx context.Context, finalURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, rb.httpMethod, finalURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)

	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	if rb.apiKey != "" {
		req.Header.Set(rb.keyType.HeaderName(), rb.apiKey)
	}

	return req, nil
}
