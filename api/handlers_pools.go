package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/coingecko_pools"
)

// PoolInfoResponse carries pool info, or a fallback marker when it is unavailable
type PoolInfoResponse struct {
	PoolInfo *coingecko_pools.PoolInfo `json:"pool_info"`
	Fallback bool                      `json:"fallback"`
}

// handleResolvePool responds with the first pool of a token.
// With network and contract_address set, upstream failures become a fallback response;
// a plain id search always answers 200, possibly with an empty pool.
func (s *Server) handleResolvePool(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	query := r.URL.Query()

	pool, err := s.poolsService.ResolvePool(r.Context(), id, query.Get("network"), query.Get("contract_address"))
	if err != nil {
		s.sendFallback(w, r, err)
		return
	}

	s.sendJSONResponse(w, pool)
}

// handlePoolInfo responds with pool token metadata; the block is optional on
// the page, so failures are rendered as an empty 200 response
func (s *Server) handlePoolInfo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	info, err := s.poolsService.PoolInfo(r.Context(), vars["network"], vars["pool"])
	if err != nil {
		s.logger.Warn("pool info unavailable",
			zap.String("network", vars["network"]),
			zap.String("pool", vars["pool"]),
			zap.Error(err))
		s.sendJSONResponse(w, PoolInfoResponse{Fallback: true})
		return
	}

	s.sendJSONResponse(w, PoolInfoResponse{PoolInfo: info})
}
