package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RateCache wraps a RatesProvider with a Redis cache keyed per currency pair.
// Each pair has its own entry and TTL, so fetching one pair never evicts
// another, and concurrent fetches for different pairs cannot clobber each
// other's results.
type RateCache struct {
	provider RatesProvider
	cache    *redis.Client
	ttl      time.Duration
}

// NewRateCache creates a RateCache over the given provider.
func NewRateCache(provider RatesProvider, cache *redis.Client, ttl time.Duration) *RateCache {
	return &RateCache{
		provider: provider,
		cache:    cache,
		ttl:      ttl,
	}
}

func (c *RateCache) cacheKey(sell, buy string) string {
	return fmt.Sprintf("rate:{%s:%s}", sell, buy)
}

// GetRate serves the cached rate for the pair if a fresh entry exists,
// otherwise fetches from the underlying provider and caches the result.
// Fetch failures propagate to the caller; they are never cached.
func (c *RateCache) GetRate(ctx context.Context, sellCurrency, buyCurrency string) (decimal.Decimal, error) {
	if c.cache == nil {
		return c.provider.GetRate(ctx, sellCurrency, buyCurrency)
	}

	key := c.cacheKey(sellCurrency, buyCurrency)

	// check cache
	val, err := c.cache.HGet(ctx, key, "rate").Result()
	if err == nil {
		if rate, perr := decimal.NewFromString(val); perr == nil && rate.IsPositive() {
			return rate, nil
		}
	}

	rate, err := c.provider.GetRate(ctx, sellCurrency, buyCurrency)
	if err != nil {
		return decimal.Decimal{}, err
	}

	pipe := c.cache.Pipeline()
	pipe.HSet(ctx, key, "rate", rate.String(), "fetched_at", time.Now().UTC().Format(time.RFC3339))
	pipe.Expire(ctx, key, c.ttl)
	_, _ = pipe.Exec(ctx)

	return rate, nil
}

var _ RatesProvider = (*RateCache)(nil)
