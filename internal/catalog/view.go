package catalog

import (
	"slices"

	"github.com/glamourbeauty/storefront/internal/domain"
	"github.com/glamourbeauty/storefront/internal/port"
)

type catalogViewer struct{}

func NewViewer() port.CatalogViewer {
	return catalogViewer{}
}

// View filters by category, then orders by the sort key. Sorting is
// stable: products with equal keys keep their catalog order. An
// unrecognized key leaves the catalog order untouched, same as
// SortFeatured.
func (catalogViewer) View(products []domain.Product, query domain.CatalogQuery) []domain.Product {
	view := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query.Category == domain.CategoryAll || p.Category == query.Category {
			view = append(view, p)
		}
	}

	switch query.Sort {
	case domain.SortPriceLow:
		slices.SortStableFunc(view, func(a, b domain.Product) int {
			return a.Price.Amount.Cmp(b.Price.Amount)
		})
	case domain.SortPriceHigh:
		slices.SortStableFunc(view, func(a, b domain.Product) int {
			return b.Price.Amount.Cmp(a.Price.Amount)
		})
	case domain.SortRating:
		slices.SortStableFunc(view, func(a, b domain.Product) int {
			return b.Rating.Cmp(a.Rating)
		})
	case domain.SortNewest:
		slices.SortStableFunc(view, func(a, b domain.Product) int {
			return newness(b) - newness(a)
		})
	}

	return view
}

func newness(p domain.Product) int {
	if p.IsNew {
		return 1
	}
	return 0
}
