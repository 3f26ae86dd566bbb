package cache

import "github.com/John-Mota/production-optimizer-back/internal/domain/model"

// Cache defines the interface for optimization result cache operations.
// Keys are catalog fingerprints, so a key is valid exactly as long as
// the catalog it was computed from is unchanged.
type Cache interface {
	Get(key string) (model.OptimizationResult, bool)
	Set(key string, value model.OptimizationResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
