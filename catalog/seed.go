package catalog

import "storefront-service/models"

// SeedProducts is the fixed demo catalog inserted when the store is empty.
var SeedProducts = []models.Product{
	{
		Title:       "Happy Duck Tee",
		Description: "Weiches Bio-T-Shirt mit fröhlicher Enten-Illustration.",
		PriceCents:  2499,
		Currency:    "eur",
		Category:    "T-Shirts",
		InStock:     true,
		Slug:        "happy-duck-tee",
		Images: []string{
			"https://images.unsplash.com/photo-1520975916090-3105956dac38?q=80&w=1200&auto=format&fit=crop",
		},
		Colors: []string{"Forest Green", "Sky Blue", "Sunshine Yellow"},
		Sizes:  models.DefaultSizes,
		SKU:    "DUCK-001",
	},
	{
		Title:       "Skater Duck Tee",
		Description: "Lässige Ente auf dem Skateboard – Style trifft Humor.",
		PriceCents:  2799,
		Currency:    "eur",
		Category:    "T-Shirts",
		InStock:     true,
		Slug:        "skater-duck-tee",
		Images: []string{
			"https://images.unsplash.com/photo-1512436991641-6745cdb1723f?q=80&w=1200&auto=format&fit=crop",
		},
		Colors: []string{"Charcoal", "Ocean", "Moss"},
		Sizes:  models.DefaultSizes,
		SKU:    "DUCK-002",
	},
	{
		Title:       "Explorer Duck Tee",
		Description: "Abenteuerlustige Ente im Natur-Look.",
		PriceCents:  2999,
		Currency:    "eur",
		Category:    "T-Shirts",
		InStock:     true,
		Slug:        "explorer-duck-tee",
		Images: []string{
			"https://images.unsplash.com/photo-1503342452485-86ff0a8befe1?q=80&w=1200&auto=format&fit=crop",
		},
		Colors: []string{"Leaf", "Stone", "Cloud"},
		Sizes:  models.DefaultSizes,
		SKU:    "DUCK-003",
	},
}
