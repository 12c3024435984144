package coingecko_pools

// PoolData identifies a liquidity pool. The zero value is the fallback
// returned when no pool is found.
type PoolData struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	Name    string `json:"name"`
	Network string `json:"network"`
}

// IsEmpty reports whether p is the fallback value
func (p PoolData) IsEmpty() bool {
	return p == PoolData{}
}

// poolsResponse is the JSON:API envelope of the onchain pool list endpoints
type poolsResponse struct {
	Data []poolResource `json:"data"`
}

type poolResource struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	} `json:"attributes"`
	Relationships struct {
		Network *relationship `json:"network,omitempty"`
		Dex     *relationship `json:"dex,omitempty"`
	} `json:"relationships"`
}

type relationship struct {
	Data struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	} `json:"data"`
}

// PoolInfo is the token metadata of a pool as returned by the pool info endpoint
type PoolInfo struct {
	Data []PoolTokenInfo `json:"data"`
}

// PoolTokenInfo describes one token of a pool
type PoolTokenInfo struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes struct {
		Address         string   `json:"address"`
		Name            string   `json:"name"`
		Symbol          string   `json:"symbol"`
		ImageURL        string   `json:"image_url"`
		CoingeckoCoinID *string  `json:"coingecko_coin_id"`
		Websites        []string `json:"websites"`
		Description     string   `json:"description"`
		GTScore         *float64 `json:"gt_score"`
	} `json:"attributes"`
}
