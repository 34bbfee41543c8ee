package port

import (
	"github.com/glamourbeauty/storefront/internal/domain"
)

// CartListener receives a cart snapshot after every mutation that
// changed state. Mutations that leave the cart untouched stay silent.
type CartListener func(domain.Cart)

// CartLedger owns the cart state for one session and mutates it in
// response to discrete, serialized user actions. No operation blocks
// or performs I/O, so none take a context.
type CartLedger interface {
	// Add merges into an existing line with the same identity or
	// appends a new one. Quantities below 1 are clamped to 1.
	Add(p domain.Product, sel domain.Selection, quantity int) error

	// SetQuantity updates a line in place; quantity <= 0 removes it.
	// Reports whether the cart changed.
	SetQuantity(key domain.LineKey, quantity int) bool

	// Remove deletes the matching line, reporting whether it existed.
	Remove(key domain.LineKey) bool

	Cart() domain.Cart
	ItemCount() int
	LineCount() int
	Subtotal() domain.Money

	Subscribe(l CartListener)
}
