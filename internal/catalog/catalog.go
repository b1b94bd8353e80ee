// Package catalog serves the fixed, read-only product list.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"lumiere-backend/internal/domain"
)

// CategoryAll disables the category constraint when used as a filter value.
const CategoryAll = "all"

// DefaultFeaturedLimit is how many products Featured returns when asked for
// a non-positive limit.
const DefaultFeaturedLimit = 6

// Filter combines every set field with logical AND. Zero value matches all.
type Filter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
	Featured *bool
}

type Catalog struct {
	products   []domain.Product
	categories []domain.Category
}

// New returns the storefront catalog.
func New() *Catalog {
	return NewWithProducts(products)
}

// NewWithProducts builds a catalog around an arbitrary product list.
func NewWithProducts(list []domain.Product) *Catalog {
	return &Catalog{products: list, categories: categories}
}

func (c *Catalog) List(f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if f.matches(p) {
			out = append(out, clone(p))
		}
	}
	return out
}

func (c *Catalog) Get(id string) (domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// Featured returns up to limit featured products in catalog order.
func (c *Catalog) Featured(limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	featured := true
	list := c.List(Filter{Featured: &featured})
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (f Filter) matches(p domain.Product) bool {
	if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Search != "" && !containsIgnoreCase(p.Name, f.Search) && !containsIgnoreCase(p.Description, f.Search) {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	return true
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func clone(p domain.Product) domain.Product {
	if p.Images != nil {
		images := make([]string, len(p.Images))
		copy(images, p.Images)
		p.Images = images
	}
	p.Dimensions = cloneString(p.Dimensions)
	p.Material = cloneString(p.Material)
	return p
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
