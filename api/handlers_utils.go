package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/coingecko_coins"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FallbackResponse is rendered in place of data that could not be loaded
type FallbackResponse struct {
	Fallback bool   `json:"fallback"`
	Error    string `json:"error"`
}

// sendJSONResponse is a common wrapper for JSON responses that sets Content-Type,
// Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	s.sendJSONResponseWithStatus(w, http.StatusOK, data)
}

func (s *Server) sendJSONResponseWithStatus(w http.ResponseWriter, status int, data interface{}) {
	// Marshal the data to calculate content length and ETag
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")
	w.WriteHeader(status)

	if _, err := w.Write(responseBytes); err != nil {
		s.logger.Warn("error writing response", zap.Error(err))
	}
}

// sendFallback renders a failed upstream call as a fallback body instead of
// failing the page. Upstream 404s stay 404, everything else is a 502.
func (s *Server) sendFallback(w http.ResponseWriter, r *http.Request, err error) {
	status := fallbackStatus(err)

	s.logger.Warn("rendering fallback",
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err))

	s.sendJSONResponseWithStatus(w, status, FallbackResponse{
		Fallback: true,
		Error:    err.Error(),
	})
}

func fallbackStatus(err error) int {
	if apiErr, ok := cg.AsAPIError(err); ok && apiErr.IsNotFound() {
		return http.StatusNotFound
	}
	if errors.Is(err, coingecko_coins.ErrEmptyCoinID) {
		return http.StatusBadRequest
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.cancelBase()

	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Error("error shutting down server", zap.Error(err))
		}
	}
}

func getParamLowercase(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	value := r.URL.Query().Get(key)
	if value != "" {
		return strings.ToLower(value)
	}
	return ""
}

// getIntParam returns the positive integer query parameter key or fallback
func getIntParam(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
