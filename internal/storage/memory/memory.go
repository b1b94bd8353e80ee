// Package memory implements the order and status repositories in process
// memory. Nothing survives a restart; it backs tests and local runs without
// MongoDB.
package memory

import (
	"context"
	"sync"

	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/order"
	"lumiere-backend/internal/status"
)

// Orders is an in-memory order.Repository.
type Orders struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

var _ order.Repository = (*Orders)(nil)

func NewOrders() *Orders {
	return &Orders{orders: make(map[string]domain.Order)}
}

// Create stores the order.
func (r *Orders) Create(_ context.Context, o domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]domain.CartLineItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	r.orders[o.ID] = o
	return nil
}

// Get retrieves an order by ID.
func (r *Orders) Get(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	items := make([]domain.CartLineItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o, nil
}

// StatusChecks is an in-memory status.Repository.
type StatusChecks struct {
	mu     sync.RWMutex
	checks []domain.StatusCheck
}

var _ status.Repository = (*StatusChecks)(nil)

func NewStatusChecks() *StatusChecks {
	return &StatusChecks{}
}

// Insert appends the check.
func (r *StatusChecks) Insert(_ context.Context, c domain.StatusCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, c)
	return nil
}

// List returns up to limit checks, oldest first.
func (r *StatusChecks) List(_ context.Context, limit int) ([]domain.StatusCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.checks)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]domain.StatusCheck, n)
	copy(out, r.checks[:n])
	return out, nil
}
