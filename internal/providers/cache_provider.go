package providers

import (
	"portfolio/internal/structures"

	"github.com/coocood/freecache"
)

// CacheProviderInterface holds rendered JSON for the public content
// endpoints. Keys are endpoint names such as "projects:featured".
type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	// Clear is called after every content write.
	Clear()
	Len() int64
}

type ResponseCache struct {
	cache  *freecache.Cache
	ttl    int
	logger Logger
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Response cache disabled")
		return disabledCache{}
	}

	ttl := max(int(conf.Cache.TTL.Seconds()), 1)
	logger.Infof(TypeApp, "Response cache: %dMB, entries live %ds", conf.Cache.Size, ttl)

	return &ResponseCache{
		cache:  freecache.NewCache(conf.Cache.Size << 20),
		ttl:    ttl,
		logger: logger,
	}
}

func (c *ResponseCache) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get([]byte(key))
	return val, err == nil
}

// Set stores a rendered response. A body larger than freecache accepts
// (1/1024 of the cache) is served uncached.
func (c *ResponseCache) Set(key string, value []byte) {
	if err := c.cache.Set([]byte(key), value, c.ttl); err != nil {
		c.logger.Debugf(TypeApp, "Response %s (%d bytes) not cached: %s", key, len(value), err)
	}
}

func (c *ResponseCache) Clear() {
	if n := c.cache.EntryCount(); n > 0 {
		c.logger.Debugf(TypeApp, "Dropping %d cached responses", n)
	}
	c.cache.Clear()
}

func (c *ResponseCache) Len() int64 {
	return c.cache.EntryCount()
}

type disabledCache struct{}

func (disabledCache) Get(string) ([]byte, bool) { return nil, false }
func (disabledCache) Set(string, []byte)        {}
func (disabledCache) Clear()                    {}
func (disabledCache) Len() int64                { return 0 }
