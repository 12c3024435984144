package interfaces

import (
	"context"

	"github.com/status-im/market-dashboard/coingecko_coins"
	"github.com/status-im/market-dashboard/formatting"
)

//go:generate mockgen -destination=mocks/coingecko_coins.go . ICoinsService

// ICoinsService defines the coin resources the dashboard reads
type ICoinsService interface {
	// CoinOverview fetches coin details and the one day OHLC series together
	CoinOverview(ctx context.Context, id string) (*coingecko_coins.CoinOverview, error)

	// CoinOHLC fetches a de-duplicated candle series
	CoinOHLC(ctx context.Context, id string, params coingecko_coins.OHLCParams) ([]formatting.OHLCPoint, error)

	// CoinsMarkets returns one page of coins ordered by market cap
	CoinsMarkets(ctx context.Context, page, perPage int) (*coingecko_coins.MarketsPage, error)

	// TrendingCoins returns the currently trending coins
	TrendingCoins(ctx context.Context) ([]coingecko_coins.TrendingCoin, error)

	// Categories returns coin categories with market figures
	Categories(ctx context.Context) ([]coingecko_coins.Category, error)
}
