package coingecko_common

import "github.com/status-im/market-dashboard/config"

// KeyType defines the API key type
type KeyType int

const (
	// DemoKey is a CoinGecko demo plan key
	DemoKey KeyType = iota
	// ProKey is a CoinGecko paid plan key
	ProKey
)

const (
	DemoAPIKeyHeader = "x-cg-demo-api-key"
	ProAPIKeyHeader  = "x-cg-pro-api-key"
)

// KeyTypeFromConfig maps the configured key type name
func KeyTypeFromConfig(name string) KeyType {
	if name == config.APIKeyTypePro {
		return ProKey
	}
	return DemoKey
}

// HeaderName returns the header the key is sent in
func (k KeyType) HeaderName() string {
	if k == ProKey {
		return ProAPIKeyHeader
	}
	return DemoAPIKeyHeader
}

func (k KeyType) String() string {
	if k == ProKey {
		return config.APIKeyTypePro
	}
	return config.APIKeyTypeDemo
}
