package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"lumiere-backend/internal/cart"
	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/logging"
)

// sharedLookupTimeout bounds a coalesced GetOrder lookup.
const sharedLookupTimeout = 10 * time.Second

type Service struct {
	carts     cart.Store
	repo      Repository
	cache     Cache
	publisher Publisher
	now       func() time.Time
	sfg       singleflight.Group
}

type Option func(*Service)

func WithCache(c Cache) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(carts cart.Store, repo Repository, opts ...Option) *Service {
	s := &Service{
		carts:     carts,
		repo:      repo,
		cache:     nopCache{},
		publisher: nopPublisher{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder snapshots the cart into a pending order, persists it and only
// then empties the cart.
func (s *Service) PlaceOrder(ctx context.Context, cartID string, customer domain.CustomerDetails) (domain.Order, error) {
	var placed domain.Order
	err := s.carts.Checkout(ctx, cartID, func(ctx context.Context, c domain.Cart) error {
		if len(c.Items) == 0 {
			return domain.ErrCartEmpty
		}
		o := domain.Order{
			ID:            uuid.NewString(),
			Customer:      customer,
			Items:         c.Items,
			Total:         c.Total,
			Status:        domain.OrderStatusPending,
			PaymentStatus: domain.PaymentStatusUnpaid,
			// mongo stores milliseconds
			CreatedAt: s.now().UTC().Truncate(time.Millisecond),
		}
		if err := s.repo.Create(ctx, o); err != nil {
			return fmt.Errorf("persist order: %w", err)
		}
		placed = o
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	log := logging.FromContext(ctx)
	log.Info("order placed",
		zap.String("order_id", placed.ID),
		zap.String("cart_id", cartID),
		zap.Int("lines", len(placed.Items)),
		zap.String("total", placed.Total.String()),
	)

	if err := s.cache.Set(ctx, placed); err != nil {
		log.Warn("order cache set failed", zap.String("order_id", placed.ID), zap.Error(err))
	}
	if err := s.publisher.OrderPlaced(ctx, placed); err != nil {
		log.Warn("order event publish failed", zap.String("order_id", placed.ID), zap.Error(err))
	}
	return placed, nil
}

// GetOrder reads through the cache to the repository. Concurrent lookups of
// the same id share one repository round trip. The shared lookup is detached
// from any single caller's cancellation; each caller still stops waiting when
// its own ctx is done.
func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	ch := s.sfg.DoChan(id, func() (interface{}, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLookupTimeout)
		defer cancel()
		return s.lookup(lookupCtx, id)
	})

	select {
	case <-ctx.Done():
		return domain.Order{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.Order{}, res.Err
		}
		return res.Val.(domain.Order), nil
	}
}

func (s *Service) lookup(ctx context.Context, id string) (domain.Order, error) {
	o, err := s.cache.Get(ctx, id)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		logging.FromContext(ctx).Warn("order cache get failed", zap.String("order_id", id), zap.Error(err))
	}

	o, err = s.repo.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.cache.Set(ctx, o); err != nil {
		logging.FromContext(ctx).Warn("order cache set failed", zap.String("order_id", id), zap.Error(err))
	}
	return o, nil
}
