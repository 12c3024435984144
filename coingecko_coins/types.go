package coingecko_coins

import "github.com/status-im/market-dashboard/formatting"

// CoinDetails is the subset of coins/{id} the dashboard renders
type CoinDetails struct {
	ID              string                    `json:"id"`
	Symbol          string                    `json:"symbol"`
	Name            string                    `json:"name"`
	AssetPlatformID *string                   `json:"asset_platform_id"`
	DetailPlatforms map[string]DetailPlatform `json:"detail_platforms"`
	Image           Image                     `json:"image"`
	MarketCapRank   *int                      `json:"market_cap_rank"`
	MarketData      MarketData                `json:"market_data"`
	LastUpdated     string                    `json:"last_updated"`
	Tickers         []Ticker                  `json:"tickers"`
}

// DetailPlatform is the token contract of a coin on one network
type DetailPlatform struct {
	DecimalPlace    *int   `json:"decimal_place"`
	ContractAddress string `json:"contract_address"`
}

type Image struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

// MarketData holds per-currency figures keyed by lower case currency code
type MarketData struct {
	CurrentPrice             map[string]float64 `json:"current_price"`
	MarketCap                map[string]float64 `json:"market_cap"`
	TotalVolume              map[string]float64 `json:"total_volume"`
	High24h                  map[string]float64 `json:"high_24h"`
	Low24h                   map[string]float64 `json:"low_24h"`
	PriceChangePercentage24h *float64           `json:"price_change_percentage_24h"`
	PriceChangePercentage7d  *float64           `json:"price_change_percentage_7d"`
	PriceChangePercentage30d *float64           `json:"price_change_percentage_30d"`
}

// Price returns the current price in currency, nil when unknown
func (m MarketData) Price(currency string) *float64 {
	if v, ok := m.CurrentPrice[currency]; ok {
		return &v
	}
	return nil
}

// Ticker is a market the coin trades on; with dex_pair_format=symbol the
// base and target of DEX pairs are symbols rather than contract addresses
type Ticker struct {
	Base   string `json:"base"`
	Target string `json:"target"`
	Market struct {
		Name       string `json:"name"`
		Identifier string `json:"identifier"`
	} `json:"market"`
	Last         *float64 `json:"last"`
	TradeURL     *string  `json:"trade_url"`
	TrustScore   *string  `json:"trust_score"`
	LastTradedAt string   `json:"last_traded_at"`
}

// CoinOverview is the coin header plus its candle chart
type CoinOverview struct {
	Coin *CoinDetails           `json:"coin"`
	OHLC []formatting.OHLCPoint `json:"ohlc"`
}

// TrendingCoin is one entry of search/trending
type TrendingCoin struct {
	ID            string  `json:"id"`
	CoinID        int     `json:"coin_id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	MarketCapRank *int    `json:"market_cap_rank"`
	Thumb         string  `json:"thumb"`
	Small         string  `json:"small"`
	Large         string  `json:"large"`
	Slug          string  `json:"slug"`
	PriceBTC      float64 `json:"price_btc"`
	Score         int     `json:"score"`
	Data          struct {
		Price                    *float64           `json:"price"`
		PriceChangePercentage24h map[string]float64 `json:"price_change_percentage_24h"`
		MarketCap                string             `json:"market_cap"`
		TotalVolume              string             `json:"total_volume"`
		Sparkline                string             `json:"sparkline"`
	} `json:"data"`
}

// PriceChange24h returns the 24h change against currency, nil when unknown
func (c TrendingCoin) PriceChange24h(currency string) *float64 {
	if v, ok := c.Data.PriceChangePercentage24h[currency]; ok {
		return &v
	}
	return nil
}

type trendingResponse struct {
	Coins []struct {
		Item TrendingCoin `json:"item"`
	} `json:"coins"`
}

// Category is one entry of coins/categories
type Category struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	MarketCap          *float64 `json:"market_cap"`
	MarketCapChange24h *float64 `json:"market_cap_change_24h"`
	Content            string   `json:"content"`
	Top3CoinsID        []string `json:"top_3_coins_id"`
	Top3Coins          []string `json:"top_3_coins"`
	Volume24h          *float64 `json:"volume_24h"`
	UpdatedAt          string   `json:"updated_at"`
}

// MarketCoin is one row of coins/markets
type MarketCoin struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	Image                    string   `json:"image"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	MarketCapRank            *int     `json:"market_cap_rank"`
	TotalVolume              *float64 `json:"total_volume"`
	High24h                  *float64 `json:"high_24h"`
	Low24h                   *float64 `json:"low_24h"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	LastUpdated              string   `json:"last_updated"`
}

// MarketsPage is one page of the all-coins table
type MarketsPage struct {
	Coins        []MarketCoin `json:"coins"`
	CurrentPage  int          `json:"current_page"`
	TotalPages   int          `json:"total_pages"`
	HasMorePages bool         `json:"has_more_pages"`
}
