package fetch

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const areaCacheKey = "areas"

// AreaCache wraps a Source and memoizes area discovery for a short TTL. The
// watch loop re-discovers areas every tick; the set changes rarely, so hitting
// the daemon each time is wasted work. Snapshots are deliberately not cached,
// they must be fetched fresh per run.
type AreaCache struct {
	Source
	cache *ttlcache.Cache[string, []string]
}

func NewAreaCache(src Source, ttl time.Duration) *AreaCache {
	return &AreaCache{
		Source: src,
		cache: ttlcache.New[string, []string](
			ttlcache.WithTTL[string, []string](ttl),
			ttlcache.WithDisableTouchOnHit[string, []string](),
		),
	}
}

func (c *AreaCache) Areas(ctx context.Context) ([]string, error) {
	if item := c.cache.Get(areaCacheKey); item != nil {
		return item.Value(), nil
	}
	areas, err := c.Source.Areas(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(areaCacheKey, areas, ttlcache.DefaultTTL)
	return areas, nil
}
