package coingecko_pools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	cg "github.com/status-im/market-dashboard/coingecko_common"
	mock_coingecko_common "github.com/status-im/market-dashboard/coingecko_common/mocks"
)

const poolsBody = `{
	"data": [
		{
			"id": "eth_0x88e6a0c2ddd26feeb64f039a2c41296fcb3f5640",
			"type": "pool",
			"attributes": {"name": "USDC / WETH 0.05%", "address": "0x88e6a0c2ddd26feeb64f039a2c41296fcb3f5640"},
			"relationships": {"network": {"data": {"id": "eth", "type": "network"}}}
		},
		{
			"id": "eth_0xsecond",
			"type": "pool",
			"attributes": {"name": "second", "address": "0xsecond"}
		}
	]
}`

func newTestService(t *testing.T) (*Service, *mock_coingecko_common.MockIFetcher) {
	ctrl := gomock.NewController(t)
	fetcher := mock_coingecko_common.NewMockIFetcher(ctrl)
	return NewService(fetcher, nil, zap.NewNop()), fetcher
}

func TestResolvePool_Scoped(t *testing.T) {
	service, fetcher := newTestService(t)

	fetcher.EXPECT().
		Fetch(gomock.Any(), "onchain/networks/eth/tokens/0xabc/pools", gomock.Nil(), cg.DefaultRevalidateSeconds).
		Return([]byte(poolsBody), nil)

	pool, err := service.ResolvePool(context.Background(), "ethereum", "eth", "0xabc")
	require.NoError(t, err)
	assert.Equal(t, PoolData{
		ID:      "eth_0x88e6a0c2ddd26feeb64f039a2c41296fcb3f5640",
		Address: "0x88e6a0c2ddd26feeb64f039a2c41296fcb3f5640",
		Name:    "USDC / WETH 0.05%",
		Network: "eth",
	}, pool)
}

func TestResolvePool_ScopedEmptyResult(t *testing.T) {
	service, fetcher := newTestService(t)

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte(`{"data":[]}`), nil)

	pool, err := service.ResolvePool(context.Background(), "x", "eth", "0xabc")
	require.NoError(t, err)
	assert.True(t, pool.IsEmpty())
}

// The directly addressed lookup must surface upstream failures.
func TestResolvePool_ScopedFailurePropagates(t *testing.T) {
	service, fetcher := newTestService(t)

	upstreamErr := &cg.APIError{StatusCode: 404, Detail: "Not Found"}
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstreamErr)

	pool, err := service.ResolvePool(context.Background(), "x", "eth", "0xabc")
	require.Error(t, err)
	assert.True(t, pool.IsEmpty())

	apiErr, ok := cg.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "API Error: 404:Not Found")
}

func TestResolvePool_Search(t *testing.T) {
	service, fetcher := newTestService(t)

	fetcher.EXPECT().
		Fetch(gomock.Any(), "onchain/search/pools", cg.QueryParams{"query": "x"}, cg.DefaultRevalidateSeconds).
		Return([]byte(poolsBody), nil)

	pool, err := service.ResolvePool(context.Background(), "x", "", "")
	require.NoError(t, err)
	assert.Equal(t, "USDC / WETH 0.05%", pool.Name)
}

func TestResolvePool_SearchWhenOnlyOneScopeGiven(t *testing.T) {
	tests := []struct {
		name            string
		network         string
		contractAddress string
	}{
		{"network only", "eth", ""},
		{"contract only", "", "0xabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, fetcher := newTestService(t)
			fetcher.EXPECT().
				Fetch(gomock.Any(), "onchain/search/pools", gomock.Any(), gomock.Any()).
				Return([]byte(`{"data":[]}`), nil)

			pool, err := service.ResolvePool(context.Background(), "x", tt.network, tt.contractAddress)
			require.NoError(t, err)
			assert.True(t, pool.IsEmpty())
		})
	}
}

// Free-text search is best effort: every failure becomes the empty pool.
func TestResolvePool_SearchFailureReturnsFallback(t *testing.T) {
	failures := map[string]error{
		"api error":   &cg.APIError{StatusCode: 500, Detail: "Internal Server Error"},
		"unreachable": cg.ErrUpstreamUnreachable,
		"timeout":     context.DeadlineExceeded,
	}

	for name, failure := range failures {
		t.Run(name, func(t *testing.T) {
			service, fetcher := newTestService(t)
			fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, failure)

			pool, err := service.ResolvePool(context.Background(), "x", "", "")
			assert.NoError(t, err)
			assert.Equal(t, PoolData{}, pool)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		service, fetcher := newTestService(t)
		fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte(`[]`), nil)

		pool, err := service.ResolvePool(context.Background(), "x", "", "")
		assert.NoError(t, err)
		assert.Equal(t, PoolData{}, pool)
	})
}

func TestPoolNetwork(t *testing.T) {
	var withRelationship poolResource
	withRelationship.ID = "bsc_0x1"
	withRelationship.Relationships.Network = &relationship{}
	withRelationship.Relationships.Network.Data.ID = "eth"

	assert.Equal(t, "eth", poolNetwork(withRelationship))
	assert.Equal(t, "solana", poolNetwork(poolResource{ID: "solana_abc"}))
	assert.Equal(t, "", poolNetwork(poolResource{ID: "noprefix"}))
}

func TestPoolInfo(t *testing.T) {
	service, fetcher := newTestService(t)

	fetcher.EXPECT().
		Fetch(gomock.Any(), "onchain/networks/eth/pools/0xpool/info", gomock.Nil(), cg.DefaultRevalidateSeconds).
		Return([]byte(`{"data":[{"id":"eth_0xa","type":"token","attributes":{"address":"0xa","name":"Wrapped Ether","symbol":"WETH","coingecko_coin_id":"weth"}}]}`), nil)

	info, err := service.PoolInfo(context.Background(), "eth", "0xpool")
	require.NoError(t, err)
	require.Len(t, info.Data, 1)
	assert.Equal(t, "WETH", info.Data[0].Attributes.Symbol)
	require.NotNil(t, info.Data[0].Attributes.CoingeckoCoinID)
	assert.Equal(t, "weth", *info.Data[0].Attributes.CoingeckoCoinID)
}

func TestPoolInfo_Errors(t *testing.T) {
	service, fetcher := newTestService(t)

	_, err := service.PoolInfo(context.Background(), "", "0xpool")
	assert.Error(t, err)

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, cg.ErrUpstreamUnreachable)
	_, err = service.PoolInfo(context.Background(), "eth", "0xpool")
	assert.True(t, errors.Is(err, cg.ErrUpstreamUnreachable))
}
