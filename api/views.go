package api

import (
	"strings"
	"time"

	"github.com/status-im/market-dashboard/coingecko_coins"
	"github.com/status-im/market-dashboard/formatting"
	"github.com/status-im/market-dashboard/pagination"
)

const displayCurrency = "usd"

// CoinOverviewView is the header and chart of a coin page
type CoinOverviewView struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Symbol         string                 `json:"symbol"`
	Image          string                 `json:"image"`
	Price          string                 `json:"price"`
	PriceChange24h string                 `json:"price_change_24h"`
	Trend          formatting.Trend       `json:"trend"`
	LastUpdated    string                 `json:"last_updated"`
	OHLC           []formatting.OHLCPoint `json:"ohlc"`
}

// MarketCoinView is one row of the all-coins table
type MarketCoinView struct {
	Rank           *int             `json:"rank"`
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Symbol         string           `json:"symbol"`
	Image          string           `json:"image"`
	Price          string           `json:"price"`
	PriceChange24h string           `json:"price_change_24h"`
	Trend          formatting.Trend `json:"trend"`
	MarketCap      string           `json:"market_cap"`
	Volume24h      string           `json:"volume_24h"`
}

// PaginationView drives the pager under the table
type PaginationView struct {
	CurrentPage  int                    `json:"current_page"`
	TotalPages   int                    `json:"total_pages"`
	HasMorePages bool                   `json:"has_more_pages"`
	IsLastPage   bool                   `json:"is_last_page"`
	Pages        []pagination.PageToken `json:"pages"`
}

type MarketsView struct {
	Coins      []MarketCoinView `json:"coins"`
	Pagination PaginationView   `json:"pagination"`
}

type TrendingCoinView struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Symbol         string           `json:"symbol"`
	Thumb          string           `json:"thumb"`
	Price          string           `json:"price"`
	PriceChange24h string           `json:"price_change_24h"`
	Trend          formatting.Trend `json:"trend"`
}

type CategoryView struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	TopCoins           []string         `json:"top_coins"`
	MarketCap          string           `json:"market_cap"`
	MarketCapChange24h string           `json:"market_cap_change_24h"`
	Trend              formatting.Trend `json:"trend"`
	Volume24h          string           `json:"volume_24h"`
}

func newCoinOverviewView(overview *coingecko_coins.CoinOverview, now time.Time) CoinOverviewView {
	coin := overview.Coin
	change := coin.MarketData.PriceChangePercentage24h

	return CoinOverviewView{
		ID:             coin.ID,
		Name:           coin.Name,
		Symbol:         strings.ToUpper(coin.Symbol),
		Image:          coin.Image.Large,
		Price:          formatting.FormatCurrency(coin.MarketData.Price(displayCurrency)),
		PriceChange24h: formatting.FormatPercentage(change),
		Trend:          trendOf(change),
		LastUpdated:    lastUpdated(coin.LastUpdated, now),
		OHLC:           nonNilPoints(overview.OHLC),
	}
}

func newMarketsView(page *coingecko_coins.MarketsPage) MarketsView {
	coins := make([]MarketCoinView, 0, len(page.Coins))
	for _, coin := range page.Coins {
		coins = append(coins, MarketCoinView{
			Rank:           coin.MarketCapRank,
			ID:             coin.ID,
			Name:           coin.Name,
			Symbol:         strings.ToUpper(coin.Symbol),
			Image:          coin.Image,
			Price:          formatting.FormatCurrency(coin.CurrentPrice),
			PriceChange24h: formatting.FormatPercentage(coin.PriceChangePercentage24h),
			Trend:          trendOf(coin.PriceChangePercentage24h),
			MarketCap:      formatting.FormatCurrency(coin.MarketCap, formatting.WithDigits(0)),
			Volume24h:      formatting.FormatCurrency(coin.TotalVolume, formatting.WithDigits(0)),
		})
	}

	return MarketsView{
		Coins: coins,
		Pagination: PaginationView{
			CurrentPage:  page.CurrentPage,
			TotalPages:   page.TotalPages,
			HasMorePages: page.HasMorePages,
			IsLastPage:   !page.HasMorePages || page.CurrentPage == page.TotalPages,
			Pages:        pagination.BuildPageNumbers(page.CurrentPage, page.TotalPages),
		},
	}
}

func newTrendingViews(coins []coingecko_coins.TrendingCoin) []TrendingCoinView {
	views := make([]TrendingCoinView, 0, len(coins))
	for _, coin := range coins {
		change := coin.PriceChange24h(displayCurrency)
		views = append(views, TrendingCoinView{
			ID:             coin.ID,
			Name:           coin.Name,
			Symbol:         coin.Symbol,
			Thumb:          coin.Thumb,
			Price:          formatting.FormatCurrency(coin.Data.Price),
			PriceChange24h: formatting.FormatPercentage(change),
			Trend:          trendOf(change),
		})
	}
	return views
}

func newCategoryViews(categories []coingecko_coins.Category) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		topCoins := category.Top3Coins
		if topCoins == nil {
			topCoins = []string{}
		}
		views = append(views, CategoryView{
			ID:                 category.ID,
			Name:               category.Name,
			TopCoins:           topCoins,
			MarketCap:          formatting.FormatCurrency(category.MarketCap),
			MarketCapChange24h: formatting.FormatPercentage(category.MarketCapChange24h),
			Trend:              trendOf(category.MarketCapChange24h),
			Volume24h:          formatting.FormatCurrency(category.Volume24h),
		})
	}
	return views
}

// lastUpdated renders an upstream RFC 3339 timestamp as "3 hours" style text,
// empty when it is missing or unparseable
func lastUpdated(timestamp string, now time.Time) string {
	if timestamp == "" {
		return ""
	}
	past, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return ""
	}
	return formatting.RelativeTime(past, now)
}

// trendOf treats an unknown change as flat
func trendOf(change *float64) formatting.Trend {
	if change == nil {
		return formatting.TrendDirection(0)
	}
	return formatting.TrendDirection(*change)
}

func nonNilPoints(points []formatting.OHLCPoint) []formatting.OHLCPoint {
	if points == nil {
		return []formatting.OHLCPoint{}
	}
	return points
}
