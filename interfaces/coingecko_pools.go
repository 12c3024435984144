package interfaces

import (
	"context"

	"github.com/status-im/market-dashboard/coingecko_pools"
)

//go:generate mockgen -destination=mocks/coingecko_pools.go . IPoolsService

// IPoolsService defines onchain pool lookups
type IPoolsService interface {
	// ResolvePool finds the first pool of a token. Scoped lookups (network and
	// contract address) return upstream failures; searches by id never do.
	ResolvePool(ctx context.Context, id, network, contractAddress string) (coingecko_pools.PoolData, error)

	// PoolInfo fetches the token metadata of a pool
	PoolInfo(ctx context.Context, network, poolID string) (*coingecko_pools.PoolInfo, error)
}
