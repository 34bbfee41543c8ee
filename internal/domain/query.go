package domain

// CategoryAll disables category filtering.
const CategoryAll = "all"

// SortKey selects the ordering of a catalog view. Unrecognized keys
// fall back to SortFeatured rather than failing.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// CatalogQuery is recomputed on every view, never stored.
type CatalogQuery struct {
	Category string
	Sort     SortKey
}
