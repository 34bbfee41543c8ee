package domain

import (
	"time"

	"golang.org/x/text/currency"
)

// Selection holds the variant attributes chosen on the product detail
// page. The zero value means "no selection" and is a valid identity of
// its own, distinct from any explicit size or color.
type Selection struct {
	Size  string
	Color string
}

// LineKey is the composite identity of a cart line: the same product
// added with a different selection is a different line.
type LineKey struct {
	ProductID string
	Selection Selection
}

// CartItem snapshots the product at add time; later catalog edits do
// not change items already in the cart.
type CartItem struct {
	Product   Product
	Selection Selection
	Quantity  int

	AddedAt time.Time
}

func (i CartItem) Key() LineKey {
	return LineKey{ProductID: i.Product.ID, Selection: i.Selection}
}

// LineTotal is price times quantity at full decimal precision.
func (i CartItem) LineTotal() Money {
	return i.Product.Price.Mul(i.Quantity)
}

// Cart is an ordered collection of line items, one per LineKey, in
// insertion order of first occurrence. Every stored quantity is >= 1;
// absence, not a zero quantity, represents a removed line.
type Cart struct {
	OwnerID  string
	Currency currency.Unit
	Items    []CartItem
}

// ItemCount is the total number of units across all lines.
func (c Cart) ItemCount() int {
	var total int
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// LineCount is the number of distinct lines.
func (c Cart) LineCount() int {
	return len(c.Items)
}

// Subtotal sums price times quantity over all lines, unrounded.
func (c Cart) Subtotal() Money {
	sum := Money{Currency: c.Currency}
	for _, it := range c.Items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

func (c Cart) Find(key LineKey) (CartItem, bool) {
	for _, it := range c.Items {
		if it.Key() == key {
			return it, true
		}
	}
	return CartItem{}, false
}
