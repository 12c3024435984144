package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/coingecko_coins"
)

func TestGetParamLowercase(t *testing.T) {
	tests := []struct {
		name        string
		queryParams map[string]string
		key         string
		expected    string
		nilRequest  bool
	}{
		{
			name:        "converts uppercase parameter to lowercase",
			queryParams: map[string]string{"currency": "USD"},
			key:         "currency",
			expected:    "usd",
		},
		{
			name:        "converts mixed case parameter to lowercase",
			queryParams: map[string]string{"ids": "Bitcoin,Ethereum"},
			key:         "ids",
			expected:    "bitcoin,ethereum",
		},
		{
			name:        "returns empty string for missing parameter",
			queryParams: map[string]string{},
			key:         "missing",
			expected:    "",
		},
		{
			name:        "returns empty string for empty parameter value",
			queryParams: map[string]string{"empty": ""},
			key:         "empty",
			expected:    "",
		},
		{
			name:        "handles already lowercase parameter",
			queryParams: map[string]string{"order": "market_cap_desc"},
			key:         "order",
			expected:    "market_cap_desc",
		},
		{
			name:        "handles special characters and numbers",
			queryParams: map[string]string{"filter": "Test-123_ABC"},
			key:         "filter",
			expected:    "test-123_abc",
		},
		{
			name:        "returns empty string for nil request",
			queryParams: nil,
			key:         "any",
			expected:    "",
			nilRequest:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request

			if tt.nilRequest {
				req = nil
			} else {
				// Create a mock HTTP request with query parameters
				req = &http.Request{
					URL: &url.URL{},
				}
				q := req.URL.Query()
				for key, value := range tt.queryParams {
					q.Set(key, value)
				}
				req.URL.RawQuery = q.Encode()
			}

			result := getParamLowercase(req, tt.key)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetIntParam(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		expected int
	}{
		{"missing uses fallback", "", 7},
		{"valid value", "page=3", 3},
		{"zero uses fallback", "page=0", 7},
		{"negative uses fallback", "page=-2", 7},
		{"garbage uses fallback", "page=abc", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/coins?"+tt.rawQuery, nil)
			assert.Equal(t, tt.expected, getIntParam(req, "page", 7))
		})
	}
}

func TestFallbackStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"upstream not found", fmt.Errorf("wrapped: %w", &cg.APIError{StatusCode: 404, Detail: "Not Found"}), http.StatusNotFound},
		{"upstream server error", &cg.APIError{StatusCode: 500, Detail: "Internal Server Error"}, http.StatusBadGateway},
		{"upstream rate limit", &cg.APIError{StatusCode: 429, Detail: "Too Many Requests"}, http.StatusBadGateway},
		{"unreachable", cg.ErrUpstreamUnreachable, http.StatusBadGateway},
		{"malformed", cg.ErrMalformedResponse, http.StatusBadGateway},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"missing id", coingecko_coins.ErrEmptyCoinID, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fallbackStatus(tt.err))
		})
	}
}

func TestSendFallback(t *testing.T) {
	server := New("0", nil, nil, zap.NewNop())
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trending", nil)

	server.sendFallback(recorder, req, &cg.APIError{StatusCode: 503, Detail: "Service Unavailable"})

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.JSONEq(t, `{"fallback":true,"error":"API Error: 503:Service Unavailable"}`, recorder.Body.String())
}

func TestSendJSONResponse(t *testing.T) {
	tests := []struct {
		name         string
		data         interface{}
		expectedJSON string
	}{
		{
			name:         "simple object",
			data:         map[string]string{"message": "hello"},
			expectedJSON: `{"message":"hello"}`,
		},
		{
			name:         "simple array",
			data:         []string{"a", "b", "c"},
			expectedJSON: `["a","b","c"]`,
		},
		{
			name:         "complex object",
			data:         map[string]interface{}{"count": 3, "items": []string{"x", "y"}},
			expectedJSON: `{"count":3,"items":["x","y"]}`,
		},
		{
			name:         "empty object",
			data:         map[string]interface{}{},
			expectedJSON: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := New("0", nil, nil, zap.NewNop())
			recorder := httptest.NewRecorder()

			server.sendJSONResponse(recorder, tt.data)

			// Check status code
			assert.Equal(t, http.StatusOK, recorder.Code)

			// Check content type
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			// Check that response body doesn't end with newline
			body := recorder.Body.String()
			assert.Equal(t, tt.expectedJSON, body)
			assert.False(t, strings.HasSuffix(body, "\n"), "Response should not end with newline")

			// Check Content-Length header matches actual body length
			expectedLength := len(tt.expectedJSON)
			assert.Equal(t, expectedLength, recorder.Body.Len())

			// Check ETag header is set
			etag := recorder.Header().Get("ETag")
			assert.True(t, len(etag) > 0, "ETag header should be set")
			assert.True(t, strings.HasPrefix(etag, `"`), "ETag should start with quote")
			assert.True(t, strings.HasSuffix(etag, `"`), "ETag should end with quote")
		})
	}
}
