package tenants

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Directory lists active tenant slugs. Client and CachedDirectory both
// satisfy it.
type Directory interface {
	ActiveSlugs(ctx context.Context) ([]string, error)
}

const cacheKey = "leadgrid:tenants:active"

// CachedDirectory caches the active-tenant list in redis with a TTL. Cache
// failures are never surfaced: a miss or a broken redis falls through to
// the inner directory, and a failed write only logs.
type CachedDirectory struct {
	inner Directory
	rdb   *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

// NewCachedDirectory wraps a directory with a redis cache.
func NewCachedDirectory(inner Directory, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *CachedDirectory {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedDirectory{inner: inner, rdb: rdb, ttl: ttl, log: log}
}

// ActiveSlugs implements Directory.
func (d *CachedDirectory) ActiveSlugs(ctx context.Context) ([]string, error) {
	if raw, err := d.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var slugs []string
		if err := json.Unmarshal([]byte(raw), &slugs); err == nil {
			return slugs, nil
		}
		d.log.Debug("discarding malformed tenant cache entry")
	} else if err != redis.Nil {
		d.log.Debug("tenant cache read failed", zap.Error(err))
	}

	slugs, err := d.inner.ActiveSlugs(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(slugs); err == nil {
		if err := d.rdb.Set(ctx, cacheKey, raw, d.ttl).Err(); err != nil {
			d.log.Debug("tenant cache write failed", zap.Error(err))
		}
	}

	return slugs, nil
}
