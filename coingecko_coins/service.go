package coingecko_coins

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/formatting"
	"github.com/status-im/market-dashboard/metrics"
)

const (
	// Slow moving lists are reused for longer than the default window
	TrendingRevalidateSeconds   = 300
	CategoriesRevalidateSeconds = 300

	opCoinOverview = "coin_overview"
)

// ErrEmptyCoinID is returned when a coin lookup has no id
var ErrEmptyCoinID = errors.New("coin id is required")

// Service reads coin resources from CoinGecko and shapes them for the dashboard
type Service struct {
	fetcher       cg.IFetcher
	metricsWriter *metrics.MetricsWriter
	logger        *zap.Logger
}

// NewService creates a new coins service
func NewService(fetcher cg.IFetcher, metricsWriter *metrics.MetricsWriter, logger *zap.Logger) *Service {
	if metricsWriter == nil {
		metricsWriter = metrics.NewMetricsWriter(metrics.ServiceCoins)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		fetcher:       fetcher,
		metricsWriter: metricsWriter,
		logger:        logger.Named("coins"),
	}
}

// CoinDetails fetches coins/{id} with DEX pairs rendered as symbols
func (s *Service) CoinDetails(ctx context.Context, id string) (*CoinDetails, error) {
	if id == "" {
		return nil, ErrEmptyCoinID
	}

	details, err := cg.FetchJSON[CoinDetails](ctx, s.fetcher, "coins/"+url.PathEscape(id),
		cg.QueryParams{"dex_pair_format": "symbol"}, cg.DefaultRevalidateSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coin %s: %w", id, err)
	}
	return &details, nil
}

// CoinOHLC fetches the candle series of a coin, de-duplicated by time
func (s *Service) CoinOHLC(ctx context.Context, id string, params OHLCParams) ([]formatting.OHLCPoint, error) {
	if id == "" {
		return nil, ErrEmptyCoinID
	}

	params = params.withDefaults()
	raw, err := cg.FetchJSON[[][]float64](ctx, s.fetcher, "coins/"+url.PathEscape(id)+"/ohlc",
		params.QueryParams(), cg.DefaultRevalidateSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ohlc for %s: %w", id, err)
	}

	return formatting.NormalizeOHLC(raw), nil
}

// CoinOverview fetches details and the default OHLC series concurrently.
// Either failure fails the overview.
func (s *Service) CoinOverview(ctx context.Context, id string) (*CoinOverview, error) {
	if id == "" {
		return nil, ErrEmptyCoinID
	}

	var overview CoinOverview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		details, err := s.CoinDetails(gctx, id)
		if err != nil {
			return err
		}
		overview.Coin = details
		return nil
	})

	g.Go(func() error {
		points, err := s.CoinOHLC(gctx, id, DefaultOHLCParams())
		if err != nil {
			return err
		}
		overview.OHLC = points
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("coin overview unavailable", zap.String("id", id), zap.Error(err))
		s.metricsWriter.RecordFallback(opCoinOverview)
		return nil, err
	}

	return &overview, nil
}

// TrendingCoins returns the coins of search/trending in upstream order
func (s *Service) TrendingCoins(ctx context.Context) ([]TrendingCoin, error) {
	resp, err := cg.FetchJSON[trendingResponse](ctx, s.fetcher, "search/trending", nil, TrendingRevalidateSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending coins: %w", err)
	}

	coins := make([]TrendingCoin, 0, len(resp.Coins))
	for _, entry := range resp.Coins {
		coins = append(coins, entry.Item)
	}
	return coins, nil
}

// Categories returns coins/categories
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	categories, err := cg.FetchJSON[[]Category](ctx, s.fetcher, "coins/categories", nil, CategoriesRevalidateSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	if categories == nil {
		categories = []Category{}
	}
	return categories, nil
}

// CoinsMarkets returns one page of the market cap ordered coin table.
// A full page means there may be more.
func (s *Service) CoinsMarkets(ctx context.Context, page, perPage int) (*MarketsPage, error) {
	params := NewMarketsParams(page, perPage)

	coins, err := cg.FetchJSON[[]MarketCoin](ctx, s.fetcher, "coins/markets", params.QueryParams(), cg.DefaultRevalidateSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch markets page %d: %w", params.Page, err)
	}
	if coins == nil {
		coins = []MarketCoin{}
	}

	return &MarketsPage{
		Coins:        coins,
		CurrentPage:  params.Page,
		TotalPages:   estimateTotalPages(params.Page),
		HasMorePages: len(coins) == params.PerPage,
	}, nil
}
