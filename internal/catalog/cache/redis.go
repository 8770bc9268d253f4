package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecap-org/ecap-directory/internal/catalog/domain"
	"github.com/ecap-org/ecap-directory/internal/logging"
)

const (
	countriesKey  = "catalog:countries"
	industriesKey = "catalog:industries"
)

// RedisCache stores catalog lists as JSON blobs. Any Redis failure is logged
// and treated as a miss so reads fall through to the database.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Countries(ctx context.Context) ([]domain.Country, bool) {
	var list []domain.Country
	return list, c.get(ctx, countriesKey, &list)
}

func (c *RedisCache) SetCountries(ctx context.Context, list []domain.Country) {
	c.set(ctx, countriesKey, list)
}

func (c *RedisCache) Industries(ctx context.Context) ([]domain.Industry, bool) {
	var list []domain.Industry
	return list, c.get(ctx, industriesKey, &list)
}

func (c *RedisCache) SetIndustries(ctx context.Context, list []domain.Industry) {
	c.set(ctx, industriesKey, list)
}

func (c *RedisCache) InvalidateCountries(ctx context.Context) {
	c.del(ctx, countriesKey)
}

func (c *RedisCache) InvalidateIndustries(ctx context.Context) {
	c.del(ctx, industriesKey)
}

func (c *RedisCache) get(ctx context.Context, key string, dst any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		logging.New(ctx).Warnf("catalog.cache.get", "key=%s error=%v", key, err)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		logging.New(ctx).Warnf("catalog.cache.get", "key=%s corrupt entry: %v", key, err)
		return false
	}
	return true
}

func (c *RedisCache) set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logging.New(ctx).Warnf("catalog.cache.set", "key=%s error=%v", key, err)
	}
}

func (c *RedisCache) del(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logging.New(ctx).Warnf("catalog.cache.invalidate", "key=%s error=%v", key, err)
	}
}

// Noop never hits. It is used when REDIS_ADDR is unset.
type Noop struct{}

func (Noop) Countries(context.Context) ([]domain.Country, bool)   { return nil, false }
func (Noop) SetCountries(context.Context, []domain.Country)       {}
func (Noop) Industries(context.Context) ([]domain.Industry, bool) { return nil, false }
func (Noop) SetIndustries(context.Context, []domain.Industry)     {}
func (Noop) InvalidateCountries(context.Context)                  {}
func (Noop) InvalidateIndustries(context.Context)                 {}
