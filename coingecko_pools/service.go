package coingecko_pools

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	"github.com/status-im/market-dashboard/metrics"
)

const (
	// Operations reported to the fallback metric
	opSearchPools = "search_pools"
)

// Service looks up onchain liquidity pools
type Service struct {
	fetcher       cg.IFetcher
	metricsWriter *metrics.MetricsWriter
	logger        *zap.Logger
}

// NewService creates a new pools service
func NewService(fetcher cg.IFetcher, metricsWriter *metrics.MetricsWriter, logger *zap.Logger) *Service {
	if metricsWriter == nil {
		metricsWriter = metrics.NewMetricsWriter(metrics.ServicePools)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		fetcher:       fetcher,
		metricsWriter: metricsWriter,
		logger:        logger.Named("pools"),
	}
}

// ResolvePool returns the first pool for a token.
//
// With both network and contractAddress the lookup is addressed directly and
// upstream failures are returned to the caller. Otherwise id is used as a
// free-text search and any failure yields the empty PoolData with a nil error.
func (s *Service) ResolvePool(ctx context.Context, id, network, contractAddress string) (PoolData, error) {
	if network != "" && contractAddress != "" {
		return s.poolByToken(ctx, network, contractAddress)
	}
	return s.searchPool(ctx, id), nil
}

// poolByToken fails loud: a directly addressed pool is expected to exist
func (s *Service) poolByToken(ctx context.Context, network, contractAddress string) (PoolData, error) {
	endpoint := fmt.Sprintf("onchain/networks/%s/tokens/%s/pools",
		url.PathEscape(network), url.PathEscape(contractAddress))

	resp, err := cg.FetchJSON[poolsResponse](ctx, s.fetcher, endpoint, nil, cg.DefaultRevalidateSeconds)
	if err != nil {
		return PoolData{}, fmt.Errorf("failed to fetch pools for %s on %s: %w", contractAddress, network, err)
	}

	return firstPool(resp), nil
}

// searchPool fails soft: search is best effort and never returns an error
func (s *Service) searchPool(ctx context.Context, id string) PoolData {
	resp, err := cg.FetchJSON[poolsResponse](ctx, s.fetcher, "onchain/search/pools",
		cg.QueryParams{"query": id}, cg.DefaultRevalidateSeconds)
	if err != nil {
		s.logger.Warn("pool search failed, using fallback",
			zap.String("query", id),
			zap.Error(err))
		s.metricsWriter.RecordFallback(opSearchPools)
		return PoolData{}
	}

	return firstPool(resp)
}

// PoolInfo fetches token metadata for a pool. Failures are returned; the
// caller decides whether the block is optional.
func (s *Service) PoolInfo(ctx context.Context, network, poolID string) (*PoolInfo, error) {
	if network == "" || poolID == "" {
		return nil, fmt.Errorf("network and pool id are required")
	}

	endpoint := fmt.Sprintf("onchain/networks/%s/pools/%s/info",
		url.PathEscape(network), url.PathEscape(poolID))

	info, err := cg.FetchJSON[PoolInfo](ctx, s.fetcher, endpoint, nil, cg.DefaultRevalidateSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pool info for %s on %s: %w", poolID, network, err)
	}
	return &info, nil
}

func firstPool(resp poolsResponse) PoolData {
	if len(resp.Data) == 0 {
		return PoolData{}
	}

	pool := resp.Data[0]
	return PoolData{
		ID:      pool.ID,
		Address: pool.Attributes.Address,
		Name:    pool.Attributes.Name,
		Network: poolNetwork(pool),
	}
}

// poolNetwork reads the network relationship, falling back to the
// "{network}_{address}" prefix of the pool id
func poolNetwork(pool poolResource) string {
	if rel := pool.Relationships.Network; rel != nil && rel.Data.ID != "" {
		return rel.Data.ID
	}
	if network, _, ok := strings.Cut(pool.ID, "_"); ok {
		return network
	}
	return ""
}
