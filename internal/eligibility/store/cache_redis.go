package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/tfalohun/olera-sub001/internal/eligibility/metrics"
	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
	"github.com/tfalohun/olera-sub001/internal/eligibility/ports"
	"github.com/tfalohun/olera-sub001/internal/platform/redis"
	"github.com/tfalohun/olera-sub001/pkg/platform/circuit"
	"github.com/tfalohun/olera-sub001/pkg/region"
)

const (
	cacheKeyPrefix  = "eligibility:catalog:"
	defaultCacheTTL = 10 * time.Minute
)

// CachedCatalog is a read-through Redis cache in front of another catalog.
// Redis failures never fail a read: the inner catalog answers instead, and
// a breaker stops calling Redis while it keeps failing.
type CachedCatalog struct {
	inner   ports.CatalogPort
	client  *redis.Client
	ttl     time.Duration
	breaker *circuit.Breaker
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// CacheOption configures a CachedCatalog.
type CacheOption func(*CachedCatalog)

func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *CachedCatalog) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithCacheMetrics(m *metrics.Metrics) CacheOption {
	return func(c *CachedCatalog) { c.metrics = m }
}

func WithCacheBreaker(b *circuit.Breaker) CacheOption {
	return func(c *CachedCatalog) { c.breaker = b }
}

func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *CachedCatalog) { c.logger = l }
}

func NewCachedCatalog(inner ports.CatalogPort, client *redis.Client, opts ...CacheOption) *CachedCatalog {
	c := &CachedCatalog{
		inner:   inner,
		client:  client,
		ttl:     defaultCacheTTL,
		breaker: circuit.New("catalog-cache"),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *CachedCatalog) ListBaselinePrograms(ctx context.Context) ([]models.Program, error) {
	return readThrough(ctx, c, cacheKeyPrefix+"baseline", c.inner.ListBaselinePrograms)
}

func (c *CachedCatalog) ListRegionPrograms(ctx context.Context, code region.Code) ([]models.Program, error) {
	return readThrough(ctx, c, cacheKeyPrefix+"programs:"+code.String(), func(ctx context.Context) ([]models.Program, error) {
		return c.inner.ListRegionPrograms(ctx, code)
	})
}

func (c *CachedCatalog) ListLocalResources(ctx context.Context, code region.Code) ([]models.LocalResource, error) {
	return readThrough(ctx, c, cacheKeyPrefix+"resources:"+code.String(), func(ctx context.Context) ([]models.LocalResource, error) {
		return c.inner.ListLocalResources(ctx, code)
	})
}

func readThrough[T any](ctx context.Context, c *CachedCatalog, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if !c.breaker.Allow() {
		c.metrics.IncrementCacheLookup("bypass")
		return load(ctx)
	}

	var cached []T
	found, err := c.client.GetJSON(ctx, key, &cached)
	switch {
	case err != nil:
		c.recordFailure(ctx, key, err)
		c.metrics.IncrementCacheLookup("error")
		return load(ctx)
	case found:
		c.breaker.RecordSuccess()
		c.metrics.IncrementCacheLookup("hit")
		return cached, nil
	}
	c.breaker.RecordSuccess()
	c.metrics.IncrementCacheLookup("miss")

	fresh, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		fresh = []T{}
	}
	if err := c.client.SetJSON(ctx, key, fresh, c.ttl); err != nil {
		c.recordFailure(ctx, key, err)
	}
	return fresh, nil
}

// recordFailure ignores errors caused by the caller's own cancellation, such
// as a sibling catalog fetch failing first.
func (c *CachedCatalog) recordFailure(ctx context.Context, key string, err error) {
	if ctx.Err() != nil {
		return
	}
	_, change := c.breaker.RecordFailure()
	c.logger.WarnContext(ctx, "catalog cache unavailable",
		"key", key,
		"circuit_opened", change.Opened,
		"error", err,
	)
}
