package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/order"
)

const DefaultTTL = 15 * time.Minute

// OrderCache keeps placed orders in Redis. Orders are immutable once
// placed, so entries are never invalidated, only expired.
type OrderCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

var _ order.Cache = (*OrderCache)(nil)

func NewOrderCache(client *redis.Client, ttl time.Duration) *OrderCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &OrderCache{client: client, baseTTL: ttl}
}

func (c *OrderCache) Get(ctx context.Context, id string) (domain.Order, error) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Order{}, order.ErrCacheMiss
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("redis get failed: %w", err)
	}

	var o domain.Order
	if err := json.Unmarshal(data, &o); err != nil {
		return domain.Order{}, fmt.Errorf("unmarshal order failed: %w", err)
	}
	return o, nil
}

func (c *OrderCache) Set(ctx context.Context, o domain.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal order failed: %w", err)
	}

	// spread expiry so a burst of orders doesn't expire together
	jitter := time.Duration(rand.Int63n(int64(c.baseTTL/3) + 1))
	if err := c.client.Set(ctx, cacheKey(o.ID), data, c.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cacheKey(id string) string {
	return fmt.Sprintf("order:%s", id)
}
