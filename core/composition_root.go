package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/api"
	"github.com/status-im/market-dashboard/cache"
	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/coingecko_coins"
	"github.com/status-im/market-dashboard/coingecko_pools"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/metrics"
)

// Setup creates and registers all services. cfg must have passed Validate.
func Setup(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := NewRegistry(logger)

	// Revalidation cache shared by every fetcher
	cacheService := cache.NewService(cfg.Cache)
	registry.Register("cache", cacheService)

	// One limiter per key, shared so both services draw from the same budget
	limiterManager := cg.NewRateLimiterManager(cfg.CoinGecko.RateLimits)

	coinsMetrics := metrics.NewMetricsWriter(metrics.ServiceCoins)
	coinsFetcher, err := cg.NewFetcher(cfg.CoinGecko, cacheService, limiterManager, coinsMetrics, logger.Named("fetcher"))
	if err != nil {
		return nil, fmt.Errorf("failed to create coins fetcher: %w", err)
	}

	poolsMetrics := metrics.NewMetricsWriter(metrics.ServicePools)
	poolsFetcher, err := cg.NewFetcher(cfg.CoinGecko, cacheService, limiterManager, poolsMetrics, logger.Named("fetcher"))
	if err != nil {
		return nil, fmt.Errorf("failed to create pools fetcher: %w", err)
	}

	coinsService := coingecko_coins.NewService(coinsFetcher, coinsMetrics, logger)
	poolsService := coingecko_pools.NewService(poolsFetcher, poolsMetrics, logger)

	server := api.New(cfg.Server.Port, coinsService, poolsService, logger)
	server.SetCacheStats(cacheService)
	registry.Register("api", server)

	return registry, nil
}
