package domain

import (
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog record supplied by the data layer.
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string

	Price Money
	// OriginalPrice equals Price when the product is not discounted.
	OriginalPrice Money

	Rating      decimal.Decimal
	ReviewCount int

	IsNew  bool
	IsSale bool
}

func (p Product) Discounted() bool {
	return p.OriginalPrice.Amount.GreaterThan(p.Price.Amount)
}

// Savings is the markdown from the original price, zero when not
// discounted.
func (p Product) Savings() Money {
	if !p.Discounted() {
		return Money{Currency: p.Price.Currency}
	}
	return p.OriginalPrice.Sub(p.Price)
}
