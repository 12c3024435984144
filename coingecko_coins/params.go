package coingecko_coins

import (
	"strings"

	cg "github.com/status-im/market-dashboard/coingecko_common"
)

const (
	DefaultCurrency = "usd"
	DefaultPerPage  = 10
	MaxPerPage      = 250 // CoinGecko's per_page limit

	// estimatedPageWindow is how far ahead the pager assumes pages exist;
	// coins/markets does not report a total
	estimatedPageWindow = 100
)

// OHLCParams selects the candle series for coins/{id}/ohlc
type OHLCParams struct {
	// Currency to quote in, e.g. "usd"
	Currency string
	// Days of history: "1", "7", "14", "30", "90", "180", "365" or "max"
	Days string
	// Precision of prices: "full" or a number of decimals
	Precision string
}

// DefaultOHLCParams is the one day, full precision USD series of the overview
func DefaultOHLCParams() OHLCParams {
	return OHLCParams{
		Currency:  DefaultCurrency,
		Days:      "1",
		Precision: "full",
	}
}

func (p OHLCParams) withDefaults() OHLCParams {
	defaults := DefaultOHLCParams()
	if p.Currency == "" {
		p.Currency = defaults.Currency
	}
	if p.Days == "" {
		p.Days = defaults.Days
	}
	p.Currency = strings.ToLower(p.Currency)
	return p
}

// QueryParams renders p; an empty precision is left out
func (p OHLCParams) QueryParams() cg.QueryParams {
	return cg.QueryParams{
		"vs_currency": p.Currency,
		"days":        p.Days,
		"precision":   p.Precision,
	}
}

// MarketsParams selects one page of coins/markets
type MarketsParams struct {
	Currency              string
	Order                 string
	Page                  int
	PerPage               int
	Sparkline             bool
	PriceChangePercentage []string
}

// NewMarketsParams returns the parameters of the all-coins table
func NewMarketsParams(page, perPage int) MarketsParams {
	return MarketsParams{
		Currency:              DefaultCurrency,
		Order:                 "market_cap_desc",
		Page:                  normalizePage(page),
		PerPage:               normalizePerPage(perPage),
		PriceChangePercentage: []string{"24h"},
	}
}

// QueryParams renders p
func (p MarketsParams) QueryParams() cg.QueryParams {
	return cg.QueryParams{
		"vs_currency":             p.Currency,
		"order":                   p.Order,
		"page":                    p.Page,
		"per_page":                p.PerPage,
		"sparkline":               p.Sparkline,
		"price_change_percentage": strings.Join(p.PriceChangePercentage, ","),
	}
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePerPage(perPage int) int {
	if perPage < 1 {
		return DefaultPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// estimateTotalPages keeps the pager one window ahead of the current page:
// 100 below page 100, then the next multiple of 100 plus one more window.
func estimateTotalPages(currentPage int) int {
	if currentPage < estimatedPageWindow {
		return estimatedPageWindow
	}
	windows := (currentPage + estimatedPageWindow - 1) / estimatedPageWindow
	return windows*estimatedPageWindow + estimatedPageWindow
}
