package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/order"
)

// setupTestRedis creates a miniredis server and an OrderCache pointing at it
func setupTestRedis(t *testing.T) (*OrderCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewOrderCache(client, time.Minute), mr
}

func sampleOrder() domain.Order {
	return domain.Order{
		ID:       "order-1",
		Customer: domain.CustomerDetails{FullName: "Asha Rao", Email: "asha@example.com"},
		Items: []domain.CartLineItem{
			{ProductID: "prod-2", Name: "Noir Coffee Table", Price: decimal.NewFromInt(75999), Quantity: 1},
		},
		Total:         decimal.NewFromInt(75999),
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
		CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSetThenGet(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()
	o := sampleOrder()

	require.NoError(t, c.Set(ctx, o))
	assert.True(t, mr.Exists("order:order-1"))

	got, err := c.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, o.Customer, got.Customer)
	assert.True(t, o.Total.Equal(got.Total))
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].Price.Equal(decimal.NewFromInt(75999)))
	assert.True(t, o.CreatedAt.Equal(got.CreatedAt))
}

func TestGet_Miss(t *testing.T) {
	c, _ := setupTestRedis(t)
	_, err := c.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, order.ErrCacheMiss)
}

func TestSet_TTLWithJitter(t *testing.T) {
	c, mr := setupTestRedis(t)
	require.NoError(t, c.Set(context.Background(), sampleOrder()))

	ttl := mr.TTL("order:order-1")
	assert.GreaterOrEqual(t, ttl, time.Minute)
	assert.LessOrEqual(t, ttl, time.Minute+20*time.Second)
}

func TestGet_Expired(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, sampleOrder()))

	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "order-1")
	assert.ErrorIs(t, err, order.ErrCacheMiss)
}

func TestGet_CorruptPayload(t *testing.T) {
	c, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("order:bad", "{not json"))

	_, err := c.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, order.ErrCacheMiss)
}

func TestGet_ServerDown(t *testing.T) {
	c, mr := setupTestRedis(t)
	mr.Close()

	_, err := c.Get(context.Background(), "order-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, order.ErrCacheMiss)
}
