package coingecko_common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RetryOptions configures retry behavior for HTTP requests
type RetryOptions struct {
	MaxRetries        int
	BaseBackoff       time.Duration
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultRetryOptions returns default retry options: a single attempt
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxRetries:        1,
		BaseBackoff:       1000 * time.Millisecond,
		LogPrefix:         "HTTP",
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

// HTTPClientWithRetries wraps an HTTP Client with retry capabilities
type HTTPClientWithRetries struct {
	Client         *http.Client
	Opts           RetryOptions
	StatusHandler  IHttpStatusHandler
	LimiterManager IRateLimiterManager
	Logger         *zap.Logger
}

// NewHTTPClientWithRetries creates a new HTTP Client with retry capabilities
func NewHTTPClientWithRetries(opts RetryOptions, handler IHttpStatusHandler, limiterManager IRateLimiterManager, logger *zap.Logger) *HTTPClientWithRetries {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &HTTPClientWithRetries{
		Client:         client,
		Opts:           opts,
		StatusHandler:  handler,
		LimiterManager: limiterManager,
		Logger:         logger,
	}
}

// ExecuteRequest executes an HTTP request with retry logic.
//
// A non-2xx response is returned as *APIError. Only 429 and 5xx are retried,
// and only while attempts remain; the last error is returned unchanged.
// Transport failures are wrapped in ErrUpstreamUnreachable.
func (c *HTTPClientWithRetries) ExecuteRequest(req *http.Request) ([]byte, time.Duration, error) {
	var lastErr error
	logger := c.logger()

	maxRetries := c.Opts.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			c.onRetry()

			backoffDuration := calculateBackoffWithJitter(c.Opts.BaseBackoff, attempt)
			logger.Info("retrying upstream request",
				zap.String("prefix", c.Opts.LogPrefix),
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", maxRetries),
				zap.Duration("backoff", backoffDuration),
				zap.Error(lastErr))

			if err := sleepContext(req.Context(), backoffDuration); err != nil {
				return nil, 0, err
			}
		}

		// Rate limit per API key before executing the request
		if c.LimiterManager != nil {
			if limiter := c.LimiterManager.GetLimiterForRequest(req); limiter != nil {
				if err := limiter.Wait(req.Context()); err != nil {
					c.onRequest(StatusError)
					return nil, 0, fmt.Errorf("rate limiter wait failed: %w", err)
				}
			}
		}

		requestStart := time.Now()
		resp, err := c.Client.Do(req)
		requestDuration := time.Since(requestStart)

		if err != nil {
			c.onRequest(StatusUnreachable)
			if req.Context().Err() != nil {
				return nil, requestDuration, fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
			}
			lastErr = fmt.Errorf("%w: request failed after %.2fs: %v", ErrUpstreamUnreachable, requestDuration.Seconds(), err)
			continue
		}

		body, err := processResponse(resp)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.IsRetryable() {
				lastErr = err
				if apiErr.StatusCode == http.StatusTooManyRequests {
					c.onRequest(StatusRateLimited)
				} else {
					c.onRequest(StatusError)
				}
				continue
			}

			c.onRequest(StatusError)
			return nil, requestDuration, err
		}

		c.onRequest(StatusSuccess)
		return body, requestDuration, nil
	}

	return nil, 0, lastErr
}

func (c *HTTPClientWithRetries) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *HTTPClientWithRetries) onRequest(status string) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRequest(status)
	}
}

func (c *HTTPClientWithRetries) onRetry() {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRetry()
	}
}

// processResponse reads the body and turns non-2xx statuses into *APIError
func processResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, resp.Status, body)
	}

	if readErr != nil {
		return nil, fmt.Errorf("%w: error reading response: %v", ErrUpstreamUnreachable, readErr)
	}

	return body, nil
}

// calculateBackoffWithJitter calculates backoff duration with jitter for retries
func calculateBackoffWithJitter(baseBackoff time.Duration, attempt int) time.Duration {
	if attempt <= 0 || baseBackoff <= 0 {
		return baseBackoff
	}

	multiplier := uint(1) << uint(attempt-1)
	backoff := time.Duration(float64(baseBackoff) * float64(multiplier))
	if half := int64(backoff / 2); half > 0 {
		backoff += time.Duration(rand.Int63n(half))
	}
	return backoff
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
