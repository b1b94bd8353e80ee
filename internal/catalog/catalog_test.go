package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-backend/internal/domain"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func boolp(b bool) *bool { return &b }

func TestList_EmptyFilterReturnsEverything(t *testing.T) {
	c := New()
	assert.Len(t, c.List(Filter{}), 16)
}

func TestList_Filters(t *testing.T) {
	c := New()

	tests := []struct {
		name   string
		filter Filter
		check  func(p domain.Product) bool
		want   int
	}{
		{
			name:   "category",
			filter: Filter{Category: "office"},
			check:  func(p domain.Product) bool { return p.Category == "office" },
			want:   4,
		},
		{
			name:   "category all",
			filter: Filter{Category: CategoryAll},
			check:  func(domain.Product) bool { return true },
			want:   16,
		},
		{
			name:   "price range inclusive",
			filter: Filter{MinPrice: dec(45999), MaxPrice: dec(75999)},
			check: func(p domain.Product) bool {
				return !p.Price.LessThan(decimal.NewFromInt(45999)) && !p.Price.GreaterThan(decimal.NewFromInt(75999))
			},
			want: 4,
		},
		{
			name:   "search name case insensitive",
			filter: Filter{Search: "VELVET"},
			check:  func(domain.Product) bool { return true },
			want:   4,
		},
		{
			name:   "search description",
			filter: Filter{Search: "lumbar"},
			check:  func(p domain.Product) bool { return p.ID == "prod-10" },
			want:   1,
		},
		{
			name:   "featured",
			filter: Filter{Featured: boolp(true)},
			check:  func(p domain.Product) bool { return p.Featured },
			want:   5,
		},
		{
			name:   "not featured in dining",
			filter: Filter{Featured: boolp(false), Category: "dining"},
			check:  func(p domain.Product) bool { return !p.Featured && p.Category == "dining" },
			want:   3,
		},
		{
			name:   "no match",
			filter: Filter{Category: "garden"},
			check:  func(domain.Product) bool { return false },
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := c.List(tt.filter)
			assert.Len(t, list, tt.want)
			for _, p := range list {
				assert.True(t, tt.check(p), "product %s does not satisfy filter", p.ID)
			}
		})
	}
}

func TestList_ReturnsCopies(t *testing.T) {
	c := New()
	list := c.List(Filter{})
	list[0].Name = "mutated"
	list[0].Images[0] = "mutated"
	require.NotNil(t, list[0].Dimensions)
	require.NotNil(t, list[0].Material)
	*list[0].Dimensions = "mutated"
	*list[0].Material = "mutated"

	p, err := c.Get(list[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", p.Name)
	assert.NotEqual(t, "mutated", p.Images[0])
	assert.Equal(t, "220cm x 95cm x 85cm", *p.Dimensions)
	assert.Equal(t, "Italian Velvet, Solid Teak Wood", *p.Material)

	*p.Material = "mutated again"
	again, err := c.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Italian Velvet, Solid Teak Wood", *again.Material)
}

func TestGet(t *testing.T) {
	c := New()

	p, err := c.Get("prod-1")
	require.NoError(t, err)
	assert.Equal(t, "Velvet Milano Sofa", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(189999)))

	_, err = c.Get("does-not-exist")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFeatured(t *testing.T) {
	c := New()
	assert.Len(t, c.Featured(0), 5)
	list := c.Featured(2)
	require.Len(t, list, 2)
	assert.Equal(t, "prod-1", list[0].ID)
	assert.Equal(t, "prod-2", list[1].ID)
}

func TestCategories(t *testing.T) {
	cats := New().Categories()
	require.Len(t, cats, 4)
	assert.Equal(t, "living-room", cats[0].ID)
	assert.Equal(t, "Dining", cats[3].Name)
}
