package catalog

import "github.com/hemshop/storefront/internal/model"

// seedProducts is the demo catalog used when the store holds no products.
func seedProducts() []model.Product {
	return []model.Product{
		{
			ID:       1,
			Name:     "Cyber Hoodie V1",
			Price:    89,
			Category: "Hoodies",
			Sizes:    []string{"M", "L", "XL"},
			Colors:   []string{"Black", "Charcoal"},
			Stock:    15,
			Material: "Cotton",
			Image:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?q=80&w=1974&auto=format&fit=crop",
			IsLatest: true,
		},
		{
			ID:       2,
			Name:     "Neon Runner Tee",
			Price:    45,
			Category: "T-Shirts",
			Sizes:    []string{"S", "M", "L"},
			Colors:   []string{"White", "Black", "Neon"},
			Stock:    40,
			Material: "Cotton",
			Image:    "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?q=80&w=1974&auto=format&fit=crop",
			IsLatest: true,
		},
		{
			ID:       3,
			Name:     "Tactical Cargo",
			Price:    120,
			Category: "Pants",
			Sizes:    []string{"30", "32", "34"},
			Colors:   []string{"Olive", "Black"},
			Stock:    8,
			Material: "Linen",
			Image:    "https://images.unsplash.com/photo-1517438476312-10d79c077509?q=80&w=1974&auto=format&fit=crop",
			IsLatest: true,
		},
		{
			ID:       4,
			Name:     "Street Cap",
			Price:    35,
			Category: "Accessories",
			Sizes:    []string{"One Size"},
			Colors:   []string{"Black"},
			Stock:    25,
			Material: "Cotton",
			Image:    "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?q=80&w=1936&auto=format&fit=crop",
			IsLatest: false,
		},
		{
			ID:       5,
			Name:     "Oversized Puffer",
			Price:    180,
			Category: "Hoodies",
			Sizes:    []string{"L", "XL"},
			Colors:   []string{"Silver"},
			Stock:    3,
			Material: "Polyester",
			Image:    "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?q=80&w=1936&auto=format&fit=crop",
			IsLatest: false,
		},
	}
}
