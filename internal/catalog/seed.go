package catalog

import (
	"github.com/glamourbeauty/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Category is one entry of the storefront filter bar.
type Category struct {
	ID   string
	Name string
}

func Categories() []Category {
	return []Category{
		{ID: domain.CategoryAll, Name: "All Products"},
		{ID: "makeup", Name: "Makeup"},
		{ID: "skincare", Name: "Skincare"},
		{ID: "fragrance", Name: "Fragrance"},
		{ID: "tools", Name: "Tools & Brushes"},
	}
}

// Seed is the built-in demo catalog used until the data-acquisition
// layer delivers a real one.
func Seed() []domain.Product {
	return []domain.Product{
		seedProduct("1", "Luxury Foundation", "makeup",
			"Long-lasting, buildable coverage with a natural finish",
			"45.99", "59.99", "4.8", 1247, true, true),
		seedProduct("2", "Anti-Aging Serum", "skincare",
			"Advanced formula with retinol and hyaluronic acid",
			"89.99", "120.00", "4.9", 892, false, true),
		seedProduct("3", "Rose Gold Palette", "makeup",
			"18 stunning shades for every occasion",
			"65.00", "65.00", "4.7", 567, true, false),
		seedProduct("4", "Hydrating Face Cream", "skincare",
			"24-hour hydration with ceramides",
			"34.99", "45.00", "4.6", 1234, false, true),
		seedProduct("5", "Vanilla Perfume", "fragrance",
			"Elegant and long-lasting fragrance",
			"78.00", "78.00", "4.8", 445, false, false),
		seedProduct("6", "Professional Brush Set", "tools",
			"Complete set of 15 premium brushes",
			"125.00", "150.00", "4.9", 678, false, true),
	}
}

func seedProduct(
	id, name, category, description string,
	price, originalPrice, rating string,
	reviewCount int,
	isNew, isSale bool,
) domain.Product {
	return domain.Product{
		ID:            id,
		Name:          name,
		Category:      category,
		Description:   description,
		Price:         domain.NewMoney(decimal.RequireFromString(price), currency.USD),
		OriginalPrice: domain.NewMoney(decimal.RequireFromString(originalPrice), currency.USD),
		Rating:        decimal.RequireFromString(rating),
		ReviewCount:   reviewCount,
		IsNew:         isNew,
		IsSale:        isSale,
	}
}
