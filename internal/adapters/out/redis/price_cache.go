// Package redis caches catalog prices so quoting and placing orders do not hit
// the database for every request.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"fueldelivery/internal/core/domain/model/catalog"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyNamespace = "fueldelivery:price"

type cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedPriceCatalog is a read-through cache in front of another ports.PriceCatalog.
// Redis failures degrade to the underlying catalog and are only logged; a
// missing price is never cached.
type CachedPriceCatalog struct {
	next   ports.PriceCatalog
	store  cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedPriceCatalog(
	next ports.PriceCatalog,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedPriceCatalog {
	return newCachedPriceCatalog(next, client, ttl, logger)
}

func newCachedPriceCatalog(
	next ports.PriceCatalog,
	store cmdable,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedPriceCatalog {
	return &CachedPriceCatalog{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger.With("component", "price-cache"),
	}
}

func (c *CachedPriceCatalog) CurrentPrice(ctx context.Context, fuelType kernel.FuelType) (kernel.Money, error) {
	if err := fuelType.Validate(); err != nil {
		return kernel.Money{}, err
	}

	key := priceKey(fuelType)
	cached, err := c.store.Get(ctx, key).Result()
	switch {
	case err == nil:
		price, parseErr := kernel.MoneyFromString(cached)
		if parseErr == nil {
			return price, nil
		}
		c.logger.WarnContext(ctx, "dropping unreadable cached price", "key", key, "error", parseErr)
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "price cache read failed", "key", key, "error", err)
	}

	price, err := c.next.CurrentPrice(ctx, fuelType)
	if err != nil {
		return kernel.Money{}, err
	}

	if err = c.store.Set(ctx, key, price.String(), c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "price cache write failed", "key", key, "error", err)
	}
	return price, nil
}

// SetPrice writes through to the underlying catalog and evicts the cached entry.
func (c *CachedPriceCatalog) SetPrice(ctx context.Context, price catalog.FuelPrice) error {
	if err := c.next.SetPrice(ctx, price); err != nil {
		return err
	}
	if err := c.store.Del(ctx, priceKey(price.FuelType)).Err(); err != nil {
		c.logger.WarnContext(ctx, "price cache eviction failed", "fuelType", price.FuelType.String(), "error", err)
	}
	return nil
}

func (c *CachedPriceCatalog) List(ctx context.Context) ([]catalog.FuelPrice, error) {
	return c.next.List(ctx)
}

func priceKey(fuelType kernel.FuelType) string {
	return keyNamespace + ":" + strings.ToLower(fuelType.String())
}
