// Package cart holds shopping carts in process memory.
package cart

import (
	"context"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lumiere-backend/internal/domain"
)

// ProductLookup resolves a product id against the catalog.
type ProductLookup interface {
	Get(id string) (domain.Product, error)
}

// Store is the cart state owner. Every method returns a copy of the cart
// as it stands after the operation.
type Store interface {
	Create(ctx context.Context) domain.Cart
	Get(ctx context.Context, cartID string) (domain.Cart, error)
	Add(ctx context.Context, cartID, productID string, quantity int) (domain.Cart, error)
	Remove(ctx context.Context, cartID, productID string) (domain.Cart, error)
	Update(ctx context.Context, cartID, productID string, quantity int) (domain.Cart, error)
	// Checkout calls fn with a snapshot of the cart while holding its lock and
	// empties the cart only if fn returns nil.
	Checkout(ctx context.Context, cartID string, fn func(ctx context.Context, c domain.Cart) error) error
}

type entry struct {
	mu   sync.Mutex
	cart domain.Cart
}

// MemoryStore keeps carts in a map. The map lock only guards membership;
// mutations of a single cart serialize on that cart's own mutex.
type MemoryStore struct {
	mu       sync.RWMutex
	carts    map[string]*entry
	products ProductLookup
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(products ProductLookup) *MemoryStore {
	return &MemoryStore{
		carts:    make(map[string]*entry),
		products: products,
	}
}

func (s *MemoryStore) Create(_ context.Context) domain.Cart {
	e := &entry{cart: domain.Cart{
		ID:    uuid.NewString(),
		Items: []domain.CartLineItem{},
		Total: decimal.Zero,
	}}

	s.mu.Lock()
	s.carts[e.cart.ID] = e
	s.mu.Unlock()

	return e.cart.Clone()
}

func (s *MemoryStore) Get(_ context.Context, cartID string) (domain.Cart, error) {
	e, err := s.lookup(cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.Clone(), nil
}

func (s *MemoryStore) Add(_ context.Context, cartID, productID string, quantity int) (domain.Cart, error) {
	e, err := s.lookup(cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	product, err := s.products.Get(productID)
	if err != nil {
		return domain.Cart{}, err
	}
	if quantity <= 0 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	found := false
	for i := range e.cart.Items {
		if e.cart.Items[i].ProductID == productID {
			if quantity > math.MaxInt-e.cart.Items[i].Quantity {
				return domain.Cart{}, domain.ErrInvalidQuantity
			}
			e.cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		e.cart.Items = append(e.cart.Items, domain.CartLineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}
	e.cart.Recompute()
	return e.cart.Clone(), nil
}

func (s *MemoryStore) Remove(_ context.Context, cartID, productID string) (domain.Cart, error) {
	e, err := s.lookup(cartID)
	if err != nil {
		return domain.Cart{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cart.Items = withoutProduct(e.cart.Items, productID)
	e.cart.Recompute()
	return e.cart.Clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, cartID, productID string, quantity int) (domain.Cart, error) {
	e, err := s.lookup(cartID)
	if err != nil {
		return domain.Cart{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.cart.Items {
		if e.cart.Items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			e.cart.Items = withoutProduct(e.cart.Items, productID)
		} else {
			e.cart.Items[i].Quantity = quantity
		}
		break
	}
	e.cart.Recompute()
	return e.cart.Clone(), nil
}

func (s *MemoryStore) Checkout(ctx context.Context, cartID string, fn func(ctx context.Context, c domain.Cart) error) error {
	e, err := s.lookup(cartID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := fn(ctx, e.cart.Clone()); err != nil {
		return err
	}
	e.cart.Items = []domain.CartLineItem{}
	e.cart.Total = decimal.Zero
	return nil
}

func (s *MemoryStore) lookup(cartID string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.carts[cartID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return e, nil
}

func withoutProduct(items []domain.CartLineItem, productID string) []domain.CartLineItem {
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}
