package products

import (
	"context"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

// CatalogSeed is the reference product catalog loaded by cmd/seed.
func CatalogSeed() []models.Product {
	return []models.Product{
		{
			Name:        "Ashwagandha Root Powder",
			Description: "Organic ashwagandha root powder for stress resilience and restful sleep.",
			Category:    enums.ProductCategoryHerbs,
			Price:       decimal.NewFromInt(349),
			ImageURL:    strPtr("https://cdn.ayurnest.app/products/ashwagandha.jpg"),
			IsActive:    true,
		},
		{
			Name:        "Triphala Tablets",
			Description: "Classic three-fruit formula supporting gentle daily elimination.",
			Category:    enums.ProductCategorySupplements,
			Price:       decimal.NewFromInt(249),
			ImageURL:    strPtr("https://cdn.ayurnest.app/products/triphala.jpg"),
			IsActive:    true,
		},
		{
			Name:        "Brahmi Hair Oil",
			Description: "Cooling brahmi and coconut oil blend for scalp and hair nourishment.",
			Category:    enums.ProductCategoryOils,
			Price:       decimal.NewFromInt(299),
			ImageURL:    strPtr("https://cdn.ayurnest.app/products/brahmi-oil.jpg"),
			IsActive:    true,
		},
		{
			Name:        "Kumkumadi Face Serum",
			Description: "Saffron-infused facial oil for an even, radiant complexion.",
			Category:    enums.ProductCategorySkincare,
			Price:       decimal.NewFromInt(799),
			ImageURL:    strPtr("https://cdn.ayurnest.app/products/kumkumadi.jpg"),
			IsActive:    true,
		},
		{
			Name:        "Tulsi Ginger Tea",
			Description: "Holy basil and ginger infusion for immunity and clear breathing.",
			Category:    enums.ProductCategoryTeas,
			Price:       decimal.NewFromInt(199),
			ImageURL:    strPtr("https://cdn.ayurnest.app/products/tulsi-tea.jpg"),
			IsActive:    true,
		},
		{
			Name:        "Chyawanprash",
			Description: "Traditional amla jam with forty herbs for daily vitality.",
			Category:    enums.ProductCategorySupplements,
			Price:       decimal.NewFromInt(449),
			ImageURL:    strPtr("https://cdn.ayurnest.app/products/chyawanprash.jpg"),
			IsActive:    true,
		},
		{
			Name:        "Sesame Massage Oil",
			Description: "Warm-pressed sesame oil for daily abhyanga self massage.",
			Category:    enums.ProductCategoryOils,
			Price:       decimal.NewFromInt(329),
			ImageURL:    strPtr("https://cdn.ayurnest.app/products/sesame-oil.jpg"),
			IsActive:    true,
		},
		{
			Name:        "Neem Face Wash",
			Description: "Purifying neem and turmeric cleanser for oily, congestion-prone skin.",
			Category:    enums.ProductCategorySkincare,
			Price:       decimal.NewFromInt(229),
			ImageURL:    strPtr("https://cdn.ayurnest.app/products/neem-wash.jpg"),
			IsActive:    true,
		},
		{
			Name:        "CCF Digestive Tea",
			Description: "Cumin, coriander, and fennel blend sipped warm after meals.",
			Category:    enums.ProductCategoryTeas,
			Price:       decimal.NewFromInt(189),
			ImageURL:    strPtr("https://cdn.ayurnest.app/products/ccf-tea.jpg"),
			IsActive:    true,
		},
		{
			Name:        "Shatavari Powder",
			Description: "Nourishing shatavari root powder for balance and stamina.",
			Category:    enums.ProductCategoryHerbs,
			Price:       decimal.NewFromInt(389),
			ImageURL:    strPtr("https://cdn.ayurnest.app/products/shatavari.jpg"),
			IsActive:    true,
		},
	}
}

// Seed upserts the reference catalog so reseeding stays idempotent.
func Seed(ctx context.Context, repo Repository) (int, error) {
	seeded := 0
	for _, product := range CatalogSeed() {
		p := product
		if err := repo.Upsert(ctx, &p); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
