package order_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-backend/internal/cart"
	"lumiere-backend/internal/catalog"
	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/order"
	"lumiere-backend/internal/storage/memory"
)

var customer = domain.CustomerDetails{
	FullName: "Asha Rao",
	Email:    "asha@example.com",
	Phone:    "9999999999",
	Address:  "12 Residency Road",
	City:     "Bengaluru",
	State:    "KA",
	Pincode:  "560025",
}

type failingRepo struct {
	order.Repository
	err error
}

func (r failingRepo) Create(context.Context, domain.Order) error { return r.err }

type mapCache struct {
	mu     sync.Mutex
	orders map[string]domain.Order
	gets   int
	err    error
}

func newMapCache() *mapCache { return &mapCache{orders: map[string]domain.Order{}} }

func (c *mapCache) Get(_ context.Context, id string) (domain.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	o, ok := c.orders[id]
	if !ok {
		return domain.Order{}, order.ErrCacheMiss
	}
	return o, nil
}

func (c *mapCache) Set(_ context.Context, o domain.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.orders[o.ID] = o
	return nil
}

type recordingPublisher struct {
	placed []domain.Order
	err    error
}

func (p *recordingPublisher) OrderPlaced(_ context.Context, o domain.Order) error {
	p.placed = append(p.placed, o)
	return p.err
}

func setup(t *testing.T, opts ...order.Option) (*cart.MemoryStore, *memory.Orders, *order.Service) {
	t.Helper()
	carts := cart.NewMemoryStore(catalog.New())
	repo := memory.NewOrders()
	return carts, repo, order.NewService(carts, repo, opts...)
}

func TestPlaceOrder_ScenarioAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 123456789, time.FixedZone("IST", 5*3600+1800))
	carts, _, svc := setup(t, order.WithClock(func() time.Time { return fixed }))

	c := carts.Create(ctx)
	_, err := carts.Add(ctx, c.ID, "prod-1", 1)
	require.NoError(t, err)
	_, err = carts.Add(ctx, c.ID, "prod-1", 2)
	require.NoError(t, err)
	_, err = carts.Add(ctx, c.ID, "prod-2", 1)
	require.NoError(t, err)
	before, err := carts.Update(ctx, c.ID, "prod-1", 0)
	require.NoError(t, err)

	o, err := svc.PlaceOrder(ctx, c.ID, customer)
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.True(t, o.Total.Equal(decimal.NewFromInt(75999)))
	assert.Equal(t, domain.OrderStatusPending, o.Status)
	assert.Equal(t, domain.PaymentStatusUnpaid, o.PaymentStatus)
	assert.Equal(t, customer, o.Customer)
	assert.Equal(t, time.UTC, o.CreatedAt.Location())
	assert.True(t, o.CreatedAt.Equal(fixed.Truncate(time.Millisecond)))

	after, err := carts.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, after.Items)
	assert.True(t, after.Total.IsZero())

	got, err := svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Items, got.Items)
	assert.True(t, before.Total.Equal(got.Total))
}

func TestPlaceOrder_CartNotFound(t *testing.T) {
	_, _, svc := setup(t)
	_, err := svc.PlaceOrder(context.Background(), "missing", customer)
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()
	carts, _, svc := setup(t)
	c := carts.Create(ctx)

	_, err := svc.PlaceOrder(ctx, c.ID, customer)
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}

func TestPlaceOrder_PersistFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	carts := cart.NewMemoryStore(catalog.New())
	boom := errors.New("mongo unavailable")
	svc := order.NewService(carts, failingRepo{err: boom})

	c := carts.Create(ctx)
	_, err := carts.Add(ctx, c.ID, "prod-5", 1)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, c.ID, customer)
	assert.ErrorIs(t, err, boom)

	got, err := carts.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestPlaceOrder_CacheAndPublisherFailuresAreNotFatal(t *testing.T) {
	ctx := context.Background()
	cache := newMapCache()
	cache.err = errors.New("redis down")
	pub := &recordingPublisher{err: errors.New("broker down")}
	carts, repo, svc := setup(t, order.WithCache(cache), order.WithPublisher(pub))

	c := carts.Create(ctx)
	_, err := carts.Add(ctx, c.ID, "prod-9", 1)
	require.NoError(t, err)

	o, err := svc.PlaceOrder(ctx, c.ID, customer)
	require.NoError(t, err)
	require.Len(t, pub.placed, 1)
	assert.Equal(t, o.ID, pub.placed[0].ID)

	_, err = repo.Get(ctx, o.ID)
	assert.NoError(t, err)
}

func TestGetOrder_UsesCache(t *testing.T) {
	ctx := context.Background()
	cache := newMapCache()
	carts, _, svc := setup(t, order.WithCache(cache))

	c := carts.Create(ctx)
	_, err := carts.Add(ctx, c.ID, "prod-13", 1)
	require.NoError(t, err)
	o, err := svc.PlaceOrder(ctx, c.ID, customer)
	require.NoError(t, err)

	cached, ok := cache.orders[o.ID]
	require.True(t, ok, "placed order should be cached")
	assert.Equal(t, o.ID, cached.ID)

	got, err := svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, 1, cache.gets)
}

func TestGetOrder_FillsCacheOnMiss(t *testing.T) {
	ctx := context.Background()
	cache := newMapCache()
	_, repo, svc := setup(t, order.WithCache(cache))
	require.NoError(t, repo.Create(ctx, domain.Order{ID: "o-1", Total: decimal.NewFromInt(10)}))

	got, err := svc.GetOrder(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, "o-1", got.ID)
	_, ok := cache.orders["o-1"]
	assert.True(t, ok)
}

func TestGetOrder_NotFound(t *testing.T) {
	_, _, svc := setup(t)
	_, err := svc.GetOrder(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestPlaceOrder_ConcurrentAddIsNotLost(t *testing.T) {
	ctx := context.Background()
	carts, _, svc := setup(t)
	c := carts.Create(ctx)
	_, err := carts.Add(ctx, c.ID, "prod-1", 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var placed domain.Order
	wg.Add(2)
	go func() {
		defer wg.Done()
		placed, _ = svc.PlaceOrder(ctx, c.ID, customer)
	}()
	go func() {
		defer wg.Done()
		_, _ = carts.Add(ctx, c.ID, "prod-2", 1)
	}()
	wg.Wait()

	got, err := carts.Get(ctx, c.ID)
	require.NoError(t, err)

	inOrder := 0
	for _, l := range placed.Items {
		if l.ProductID == "prod-2" {
			inOrder++
		}
	}
	inCart := 0
	for _, l := range got.Items {
		if l.ProductID == "prod-2" {
			inCart++
		}
	}
	assert.Equal(t, 1, inOrder+inCart, "prod-2 must end up in exactly one of order or cart")
}

// blockingRepo holds Get until released, failing early if its ctx ends.
type blockingRepo struct {
	order.Repository
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *blockingRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	r.once.Do(func() { close(r.entered) })
	select {
	case <-ctx.Done():
		return domain.Order{}, ctx.Err()
	case <-r.release:
		return domain.Order{ID: id, Total: decimal.NewFromInt(75999)}, nil
	}
}

func TestGetOrder_CancelledCallerDoesNotFailOthers(t *testing.T) {
	repo := &blockingRepo{
		Repository: memory.NewOrders(),
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	svc := order.NewService(cart.NewMemoryStore(catalog.New()), repo)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.GetOrder(firstCtx, "o-1")
		firstErr <- err
	}()
	<-repo.entered

	type result struct {
		o   domain.Order
		err error
	}
	second := make(chan result, 1)
	go func() {
		o, err := svc.GetOrder(context.Background(), "o-1")
		second <- result{o, err}
	}()
	// let the second caller join the in-flight lookup
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(repo.release)
	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, "o-1", res.o.ID)
}
