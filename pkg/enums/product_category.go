package enums

import "fmt"

// ProductCategory maps to the product_category enum in Postgres.
type ProductCategory string

const (
	ProductCategoryHerbs       ProductCategory = "herbs"
	ProductCategoryOils        ProductCategory = "oils"
	ProductCategorySupplements ProductCategory = "supplements"
	ProductCategorySkincare    ProductCategory = "skincare"
	ProductCategoryTeas        ProductCategory = "teas"
)

var validProductCategories = []ProductCategory{
	ProductCategoryHerbs,
	ProductCategoryOils,
	ProductCategorySupplements,
	ProductCategorySkincare,
	ProductCategoryTeas,
}

// IsValid checks whether the given category matches the canonical enum.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw strings into ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
