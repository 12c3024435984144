package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/status-im/market-dashboard/coingecko_coins"
)

// handleCoinOverview responds with the formatted header and one day chart of a coin
func (s *Server) handleCoinOverview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	overview, err := s.coinsService.CoinOverview(r.Context(), id)
	if err != nil {
		s.sendFallback(w, r, err)
		return
	}

	s.sendJSONResponse(w, newCoinOverviewView(overview, time.Now()))
}

// handleCoinOHLC responds with the candle series of a coin.
// Query: days, vs_currency, precision.
func (s *Server) handleCoinOHLC(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	params := coingecko_coins.OHLCParams{
		Currency:  getParamLowercase(r, "vs_currency"),
		Days:      getParamLowercase(r, "days"),
		Precision: getParamLowercase(r, "precision"),
	}

	points, err := s.coinsService.CoinOHLC(r.Context(), id, params)
	if err != nil {
		s.sendFallback(w, r, err)
		return
	}

	s.sendJSONResponse(w, nonNilPoints(points))
}

// handleCoinsMarkets responds with one page of the all-coins table and its pager
func (s *Server) handleCoinsMarkets(w http.ResponseWriter, r *http.Request) {
	page := getIntParam(r, "page", 1)
	perPage := getIntParam(r, "per_page", coingecko_coins.DefaultPerPage)

	markets, err := s.coinsService.CoinsMarkets(r.Context(), page, perPage)
	if err != nil {
		s.sendFallback(w, r, err)
		return
	}

	s.sendJSONResponse(w, newMarketsView(markets))
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	coins, err := s.coinsService.TrendingCoins(r.Context())
	if err != nil {
		s.sendFallback(w, r, err)
		return
	}

	s.sendJSONResponse(w, newTrendingViews(coins))
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.coinsService.Categories(r.Context())
	if err != nil {
		s.sendFallback(w, r, err)
		return
	}

	s.sendJSONResponse(w, newCategoryViews(categories))
}
