package coingecko_common

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStatusHandler struct {
	statuses []string
	retries  int
}

func (h *recordingStatusHandler) OnRequest(status string) { h.statuses = append(h.statuses, status) }
func (h *recordingStatusHandler) OnRetry()                { h.retries++ }

func TestHTTPClientWithRetries_APIErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "error field is used",
			status:   http.StatusTooManyRequests,
			body:     `{"error":"rate limited"}`,
			expected: "API Error: 429:rate limited",
		},
		{
			name:     "unparseable body falls back to reason phrase",
			status:   http.StatusInternalServerError,
			body:     `<html>oops</html>`,
			expected: "API Error: 500:Internal Server Error",
		},
		{
			name:     "empty error field falls back to reason phrase",
			status:   http.StatusNotFound,
			body:     `{"error":""}`,
			expected: "API Error: 404:Not Found",
		},
		{
			name:     "body without error field",
			status:   http.StatusUnauthorized,
			body:     `{"status":{"error_code":10002}}`,
			expected: "API Error: 401:Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewHTTPClientWithRetries(DefaultRetryOptions(), nil, nil, nil)
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)

			body, _, err := client.ExecuteRequest(req)
			require.Error(t, err)
			assert.Nil(t, body)
			assert.EqualError(t, err, tt.expected)

			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestHTTPClientWithRetries_NonRetryableStatusIsNotRetried(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	opts := DefaultRetryOptions()
	opts.MaxRetries = 3
	opts.BaseBackoff = time.Millisecond
	handler := &recordingStatusHandler{}
	client := NewHTTPClientWithRetries(opts, handler, nil, nil)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	_, _, err := client.ExecuteRequest(req)

	assert.EqualError(t, err, "API Error: 400:Bad Request")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Equal(t, []string{StatusError}, handler.statuses)
	assert.Zero(t, handler.retries)
}

func TestHTTPClientWithRetries_ReturnsLastRetryableError(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"slow down"}`))
	}))
	defer server.Close()

	opts := DefaultRetryOptions()
	opts.MaxRetries = 3
	opts.BaseBackoff = time.Millisecond
	handler := &recordingStatusHandler{}
	client := NewHTTPClientWithRetries(opts, handler, nil, nil)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	_, _, err := client.ExecuteRequest(req)

	assert.EqualError(t, err, "API Error: 429:slow down")
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	assert.Equal(t, 2, handler.retries)
	assert.Equal(t, []string{StatusRateLimited, StatusRateLimited, StatusRateLimited}, handler.statuses)
}

func TestHTTPClientWithRetries_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	handler := &recordingStatusHandler{}
	client := NewHTTPClientWithRetries(DefaultRetryOptions(), handler, nil, nil)
	req, _ := http.NewRequest(http.MethodGet, url, nil)

	_, _, err := client.ExecuteRequest(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamUnreachable))
	assert.Equal(t, []string{StatusUnreachable}, handler.statuses)
}

func TestHTTPClientWithRetries_BackoffRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	opts := DefaultRetryOptions()
	opts.MaxRetries = 2
	opts.BaseBackoff = 10 * time.Second
	client := NewHTTPClientWithRetries(opts, nil, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)

	start := time.Now()
	_, _, err := client.ExecuteRequest(req)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	base := 100 * time.Millisecond

	assert.Equal(t, base, calculateBackoffWithJitter(base, 0))

	for attempt := 1; attempt <= 3; attempt++ {
		expected := base * time.Duration(1<<uint(attempt-1))
		got := calculateBackoffWithJitter(base, attempt)
		assert.GreaterOrEqual(t, got, expected)
		assert.Less(t, got, expected+expected/2+time.Millisecond)
	}
}
