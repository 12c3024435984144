package coingecko_common

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

var (
	// ErrUpstreamUnreachable wraps network level failures talking to CoinGecko
	ErrUpstreamUnreachable = errors.New("upstream unreachable")

	// ErrMalformedResponse wraps bodies that are not valid JSON or do not decode
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// APIError is returned for every non-2xx upstream response
type APIError struct {
	StatusCode int
	// Detail is the body's "error" field, or the status reason phrase
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d:%s", e.StatusCode, e.Detail)
}

// IsRetryable reports whether the status is worth another attempt
func (e *APIError) IsRetryable() bool {
	return isRetryableError(e.StatusCode)
}

// IsNotFound reports whether upstream returned 404
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// AsAPIError unwraps err to *APIError
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// newAPIError builds the failure for a non-2xx response.
// Unparseable bodies are treated as an empty object.
func newAPIError(statusCode int, status string, body []byte) *APIError {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		payload = map[string]interface{}{}
	}

	detail := errorDetail(payload["error"])
	if detail == "" {
		detail = reasonPhrase(statusCode, status)
	}

	return &APIError{
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// errorDetail renders the "error" field; falsy values yield ""
func errorDetail(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return ""
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

func reasonPhrase(statusCode int, status string) string {
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	// Non-standard code: use whatever the server sent after the number
	return strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(statusCode)))
}

// isRetryableError determines if a given HTTP status code should trigger a retry
func isRetryableError(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusInternalServerError ||
		statusCode == http.StatusBadGateway ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}
