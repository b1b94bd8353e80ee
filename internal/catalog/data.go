package catalog

import (
	"github.com/shopspring/decimal"

	"lumiere-backend/internal/domain"
)

var products = []domain.Product{
	{
		ID:          "prod-1",
		Name:        "Velvet Milano Sofa",
		Description: "Luxurious three-seater velvet sofa with gold-finished legs. Perfect centerpiece for any modern living room.",
		Price:       decimal.NewFromInt(189999),
		Category:    "living-room",
		Image:       "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800&q=80"},
		Dimensions:  ptr("220cm x 95cm x 85cm"),
		Material:    ptr("Italian Velvet, Solid Teak Wood"),
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "prod-2",
		Name:        "Noir Coffee Table",
		Description: "Elegant black marble top coffee table with brushed brass frame. A statement piece for sophisticated interiors.",
		Price:       decimal.NewFromInt(75999),
		Category:    "living-room",
		Image:       "https://images.unsplash.com/photo-1533090481720-856c6e3c1fdc?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1533090481720-856c6e3c1fdc?w=800&q=80"},
		Dimensions:  ptr("120cm x 60cm x 45cm"),
		Material:    ptr("Black Marble, Brass"),
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "prod-3",
		Name:        "Accent Armchair",
		Description: "Mid-century modern accent chair with premium leather upholstery and walnut wood frame.",
		Price:       decimal.NewFromInt(65999),
		Category:    "living-room",
		Image:       "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=800&q=80"},
		Dimensions:  ptr("75cm x 80cm x 85cm"),
		Material:    ptr("Premium Leather, Walnut Wood"),
		InStock:     true,
		Featured:    false,
	},
	{
		ID:          "prod-4",
		Name:        "Crystal Floor Lamp",
		Description: "Art deco inspired floor lamp with crystal accents and gold finish base.",
		Price:       decimal.NewFromInt(45999),
		Category:    "living-room",
		Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&q=80"},
		Dimensions:  ptr("180cm height"),
		Material:    ptr("Crystal, Brass"),
		InStock:     true,
		Featured:    false,
	},
	{
		ID:          "prod-5",
		Name:        "Royal King Bed",
		Description: "Majestic king-size bed with tufted headboard in premium velvet. Gold-finished metal accents.",
		Price:       decimal.NewFromInt(245999),
		Category:    "bedroom",
		Image:       "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?w=800&q=80"},
		Dimensions:  ptr("200cm x 210cm x 140cm"),
		Material:    ptr("Velvet, Solid Oak"),
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "prod-6",
		Name:        "Ebony Nightstand",
		Description: "Sleek nightstand with soft-close drawers and black lacquer finish.",
		Price:       decimal.NewFromInt(35999),
		Category:    "bedroom",
		Image:       "https://images.unsplash.com/photo-1551298370-9d3d53f3b9e9?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1551298370-9d3d53f3b9e9?w=800&q=80"},
		Dimensions:  ptr("50cm x 40cm x 55cm"),
		Material:    ptr("MDF, Black Lacquer"),
		InStock:     true,
		Featured:    false,
	},
	{
		ID:          "prod-7",
		Name:        "Grand Wardrobe",
		Description: "Spacious wardrobe with mirrored doors and internal LED lighting. Customizable compartments.",
		Price:       decimal.NewFromInt(185999),
		Category:    "bedroom",
		Image:       "https://images.unsplash.com/photo-1558997519-83ea9252edf8?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1558997519-83ea9252edf8?w=800&q=80"},
		Dimensions:  ptr("250cm x 60cm x 220cm"),
		Material:    ptr("Engineered Wood, Mirror"),
		InStock:     true,
		Featured:    false,
	},
	{
		ID:          "prod-8",
		Name:        "Vanity Dresser",
		Description: "Hollywood-style vanity with LED mirror and velvet stool included.",
		Price:       decimal.NewFromInt(95999),
		Category:    "bedroom",
		Image:       "https://images.unsplash.com/photo-1595526114035-0d45ed16cfbf?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1595526114035-0d45ed16cfbf?w=800&q=80"},
		Dimensions:  ptr("120cm x 45cm x 150cm"),
		Material:    ptr("Wood, LED Glass"),
		InStock:     true,
		Featured:    false,
	},
	{
		ID:          "prod-9",
		Name:        "Executive Desk",
		Description: "Premium executive desk with leather inlay and built-in cable management.",
		Price:       decimal.NewFromInt(165999),
		Category:    "office",
		Image:       "https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd?w=800&q=80"},
		Dimensions:  ptr("180cm x 90cm x 75cm"),
		Material:    ptr("Mahogany, Leather"),
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "prod-10",
		Name:        "Ergonomic Chair",
		Description: "High-back ergonomic office chair with lumbar support and premium leather.",
		Price:       decimal.NewFromInt(85999),
		Category:    "office",
		Image:       "https://images.unsplash.com/photo-1580480055273-228ff5388ef8?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1580480055273-228ff5388ef8?w=800&q=80"},
		Dimensions:  ptr("70cm x 70cm x 130cm"),
		Material:    ptr("Premium Leather, Aluminum"),
		InStock:     true,
		Featured:    false,
	},
	{
		ID:          "prod-11",
		Name:        "Bookshelf Unit",
		Description: "Open bookshelf with brass frame and tempered glass shelves.",
		Price:       decimal.NewFromInt(125999),
		Category:    "office",
		Image:       "https://images.unsplash.com/photo-1594620302200-9a762244a156?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1594620302200-9a762244a156?w=800&q=80"},
		Dimensions:  ptr("150cm x 35cm x 200cm"),
		Material:    ptr("Brass, Tempered Glass"),
		InStock:     true,
		Featured:    false,
	},
	{
		ID:          "prod-12",
		Name:        "Filing Cabinet",
		Description: "Modern filing cabinet with 4 drawers and soft-close mechanism.",
		Price:       decimal.NewFromInt(45999),
		Category:    "office",
		Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80"},
		Dimensions:  ptr("50cm x 60cm x 120cm"),
		Material:    ptr("Steel, Wood Veneer"),
		InStock:     true,
		Featured:    false,
	},
	{
		ID:          "prod-13",
		Name:        "Dining Table Set",
		Description: "8-seater dining table with marble top and matching upholstered chairs.",
		Price:       decimal.NewFromInt(325999),
		Category:    "dining",
		Image:       "https://images.unsplash.com/photo-1617806118233-18e1de247200?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1617806118233-18e1de247200?w=800&q=80"},
		Dimensions:  ptr("240cm x 100cm x 76cm"),
		Material:    ptr("Marble, Velvet, Oak"),
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "prod-14",
		Name:        "Bar Cabinet",
		Description: "Art deco bar cabinet with mirrored interior and gold hardware.",
		Price:       decimal.NewFromInt(145999),
		Category:    "dining",
		Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80"},
		Dimensions:  ptr("100cm x 45cm x 150cm"),
		Material:    ptr("Walnut, Mirror, Brass"),
		InStock:     true,
		Featured:    false,
	},
	{
		ID:          "prod-15",
		Name:        "Dining Chairs (Set of 4)",
		Description: "Set of 4 velvet dining chairs with gold-finished legs.",
		Price:       decimal.NewFromInt(89999),
		Category:    "dining",
		Image:       "https://images.unsplash.com/photo-1503602642458-232111445657?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1503602642458-232111445657?w=800&q=80"},
		Dimensions:  ptr("45cm x 50cm x 95cm each"),
		Material:    ptr("Velvet, Gold Metal"),
		InStock:     true,
		Featured:    false,
	},
	{
		ID:          "prod-16",
		Name:        "Chandelier - Crystal",
		Description: "Grand crystal chandelier with 12 lights. Perfect for dining rooms.",
		Price:       decimal.NewFromInt(195999),
		Category:    "dining",
		Image:       "https://images.unsplash.com/photo-1540932239986-30128078f3c5?w=800&q=80",
		Images:      []string{"https://images.unsplash.com/photo-1540932239986-30128078f3c5?w=800&q=80"},
		Dimensions:  ptr("80cm diameter x 100cm height"),
		Material:    ptr("Crystal, Chrome"),
		InStock:     true,
		Featured:    false,
	},
}

var categories = []domain.Category{
	{ID: "living-room", Name: "Living Room", Image: "https://images.unsplash.com/photo-1653668984101-29088a7b5476?w=800&q=80"},
	{ID: "bedroom", Name: "Bedroom", Image: "https://images.unsplash.com/photo-1702865071772-16f67bbf594e?w=800&q=80"},
	{ID: "office", Name: "Office", Image: "https://images.unsplash.com/photo-1704655295066-681e61ecca6b?w=800&q=80"},
	{ID: "dining", Name: "Dining", Image: "https://images.unsplash.com/photo-1649747823135-3450d7b8fa41?w=800&q=80"},
}

func ptr(s string) *string { return &s }
