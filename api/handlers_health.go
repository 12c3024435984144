package api

import (
	"net/http"
)

// handleHealth responds with 200 OK to indicate the service is running.
// Upstream reachability is not probed; failed calls show up as fallbacks.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status": "ok",
		"services": map[string]string{
			"coingecko_coins": serviceState(s.coinsService != nil),
			"coingecko_pools": serviceState(s.poolsService != nil),
		},
	}

	if s.cacheStats != nil {
		stats := s.cacheStats.Stats()
		status["cache"] = map[string]interface{}{
			"enabled": stats.Enabled,
			"items":   stats.GoCacheItems,
		}
	}

	s.sendJSONResponse(w, status)
}

func serviceState(configured bool) string {
	if configured {
		return "up"
	}
	return "unknown"
}
