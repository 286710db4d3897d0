package providers

import "portfolio/internal/structures"

// countingCache reports hits and misses of the response cache, and every
// drop caused by a content write.
type countingCache struct {
	CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *countingCache) Get(key string) ([]byte, bool) {
	val, ok := c.CacheProviderInterface.Get(key)
	if ok {
		c.metrics.IncCacheHits()
	} else {
		c.metrics.IncCacheMisses()
	}
	return val, ok
}

func (c *countingCache) Clear() {
	c.CacheProviderInterface.Clear()
	c.metrics.IncCacheInvalidations()
}

// NewInstrumentedCacheProvider is the cache the controllers get. A disabled
// cache stays unwrapped so it does not report a miss for every request.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if _, off := inner.(disabledCache); off {
		return inner
	}
	return &countingCache{CacheProviderInterface: inner, metrics: metrics}
}
