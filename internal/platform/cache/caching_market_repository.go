// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"crypto_dashboard/internal/feature/market/domain/entity"
	"crypto_dashboard/internal/feature/market/usecase"
)

// CachingMarketRepository decorates a MarketRepository with Redis caching of
// kline reads. Point-in-time reads (current price, 24h ticker) always pass
// through: a cached ticker snapshot would contradict its contract.
//
// The decorator is an opt-in enhancement. With a nil Redis client every call
// goes straight to the inner repository, which keeps the default deployment
// on the one-shot fetch-per-cycle model.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	maxTTL    time.Duration
	namespace string
}

// CachingMarketRepositoryがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If maxTTL is 0, it defaults to 5 seconds. If namespace is empty, it uses
// "klines".
func NewCachingMarketRepository(rdb *redis.Client, maxTTL time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if maxTTL <= 0 {
		maxTTL = 5 * time.Second
	}
	if namespace == "" {
		namespace = "klines"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		maxTTL:    maxTTL,
		namespace: namespace,
	}
}

// GetKlines retrieves candles, checking cache first then falling back to the
// exchange. Entries live at most until the current interval bucket closes.
func (c *CachingMarketRepository) GetKlines(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetKlines(ctx, symbol, interval, limit)
	}

	key := c.cacheKey(symbol, interval, limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Candle
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the exchange
	out, err := c.inner.GetKlines(ctx, symbol, interval, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort); empty responses are not cached so a
	// recovering symbol becomes visible on the next cycle
	if len(out) > 0 {
		if b, err := json.Marshal(out); err == nil {
			_ = c.rdb.Set(ctx, key, b, TTLUntilBucketClose(interval, c.maxTTL)).Err()
		}
	}

	return out, nil
}

// GetCurrentPrice always delegates to the inner repository.
func (c *CachingMarketRepository) GetCurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	return c.inner.GetCurrentPrice(ctx, symbol)
}

// Get24hTicker always delegates to the inner repository.
func (c *CachingMarketRepository) Get24hTicker(ctx context.Context, symbol string) (*entity.TickerSnapshot, error) {
	return c.inner.Get24hTicker(ctx, symbol)
}

// cacheKey generates a cache key for a specific query.
func (c *CachingMarketRepository) cacheKey(symbol, interval string, limit int) string {
	return fmt.Sprintf("%s:%s:%s:%d",
		c.namespace,
		safe(symbol),
		safe(interval),
		limit,
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
