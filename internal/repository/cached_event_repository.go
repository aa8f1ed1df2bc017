package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shizuku355/suiquest-jp/internal/domain"
	"github.com/shizuku355/suiquest-jp/pkg/logger"
	"github.com/shizuku355/suiquest-jp/pkg/redis"
)

const (
	eventListCacheKey = "events:list"
	eventCacheTTL     = 15 * time.Second
)

// errCacheMiss signals an absent cache entry as opposed to a cache fault
var errCacheMiss = errors.New("cache miss")

// eventCache is the slice of the cache the repository needs. Get returns
// errCacheMiss for absent keys; any other error is a cache fault.
type eventCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// redisEventCache adapts the shared Redis client to eventCache
type redisEventCache struct {
	client *redis.Client
}

func (c *redisEventCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", errCacheMiss
	}
	return val, err
}

func (c *redisEventCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisEventCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// CachedEventRepository caches the projected event list with a short
// TTL. The ledger stays the source of truth: a successful mint relay
// invalidates the cache instead of mutating counts locally, and cache
// faults degrade to direct ledger reads.
type CachedEventRepository struct {
	inner EventRepository
	cache eventCache
	ttl   time.Duration
}

// NewCachedEventRepository wraps an event repository with Redis caching
func NewCachedEventRepository(inner EventRepository, cache *redis.Client) *CachedEventRepository {
	return newCachedEventRepository(inner, &redisEventCache{client: cache})
}

func newCachedEventRepository(inner EventRepository, cache eventCache) *CachedEventRepository {
	return &CachedEventRepository{
		inner: inner,
		cache: cache,
		ttl:   eventCacheTTL,
	}
}

func (r *CachedEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	cached, err := r.cache.Get(ctx, eventListCacheKey)
	if err == nil {
		var events []*domain.Event
		if uerr := json.Unmarshal([]byte(cached), &events); uerr == nil {
			return events, nil
		}
		logger.Get().Warn("corrupt event cache entry, refetching", zap.String("key", eventListCacheKey))
	} else if err != errCacheMiss {
		logger.Get().Warn("event cache read failed", zap.Error(err))
	}

	events, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, merr := json.Marshal(events); merr == nil {
		if serr := r.cache.Set(ctx, eventListCacheKey, data, r.ttl); serr != nil {
			logger.Get().Warn("event cache write failed", zap.Error(serr))
		}
	}
	return events, nil
}

func (r *CachedEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, nil
}

func (r *CachedEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *CachedEventRepository) Invalidate(ctx context.Context) error {
	if err := r.cache.Del(ctx, eventListCacheKey); err != nil {
		logger.Get().Warn("event cache invalidation failed", zap.Error(err))
		return err
	}
	return r.inner.Invalidate(ctx)
}
