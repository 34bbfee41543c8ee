package port

import (
	"github.com/glamourbeauty/storefront/internal/domain"
)

type CatalogViewer interface {
	// View returns the catalog filtered by the query's category and
	// ordered by its sort key. The result is always a subset of the
	// input.
	View(products []domain.Product, query domain.CatalogQuery) []domain.Product
}
