package interfaces

import "github.com/status-im/market-dashboard/cache"

// ICacheStats reports the state of the response cache
type ICacheStats interface {
	Stats() cache.ServiceStats
}
