// Package order turns carts into durable orders.
package order

import (
	"context"
	"errors"

	"lumiere-backend/internal/domain"
)

// Repository persists orders durably.
type Repository interface {
	Create(ctx context.Context, o domain.Order) error
	Get(ctx context.Context, id string) (domain.Order, error)
}

// Cache is an optional read-through layer in front of the Repository.
type Cache interface {
	Get(ctx context.Context, id string) (domain.Order, error)
	Set(ctx context.Context, o domain.Order) error
}

// Publisher announces placed orders to the outside world.
type Publisher interface {
	OrderPlaced(ctx context.Context, o domain.Order) error
}

// ErrCacheMiss is returned by Cache.Get when the order is not cached.
var ErrCacheMiss = errors.New("cache miss")

type nopCache struct{}

func (nopCache) Get(context.Context, string) (domain.Order, error) {
	return domain.Order{}, ErrCacheMiss
}

func (nopCache) Set(context.Context, domain.Order) error { return nil }

type nopPublisher struct{}

func (nopPublisher) OrderPlaced(context.Context, domain.Order) error { return nil }
