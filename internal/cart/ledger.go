package cart

import (
	"fmt"
	"slices"
	"time"

	"github.com/glamourbeauty/storefront/internal/domain"
	"github.com/glamourbeauty/storefront/internal/port"
	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

type cartLedger struct {
	cart      domain.Cart
	listeners []port.CartListener
	now       func() time.Time
}

type Option func(*cartLedger)

// WithOwnerID attaches the ledger to an existing session identity
// instead of the generated one.
func WithOwnerID(ownerID string) Option {
	return func(l *cartLedger) {
		l.cart.OwnerID = ownerID
	}
}

func WithCurrency(unit currency.Unit) Option {
	return func(l *cartLedger) {
		l.cart.Currency = unit
	}
}

// WithClock overrides the add-time stamp source.
func WithClock(now func() time.Time) Option {
	return func(l *cartLedger) {
		l.now = now
	}
}

// New creates an empty single-currency cart ledger. The caller holds
// the single owning reference; mutations are expected one at a time.
func New(opts ...Option) port.CartLedger {
	l := &cartLedger{
		cart: domain.Cart{
			OwnerID:  uuid.NewString(),
			Currency: currency.USD,
		},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *cartLedger) Add(p domain.Product, sel domain.Selection, quantity int) error {
	if p.ID == "" {
		return fmt.Errorf("product id is empty")
	}

	if quantity < 1 {
		quantity = 1
	}

	key := domain.LineKey{ProductID: p.ID, Selection: sel}
	for i := range l.cart.Items {
		if l.cart.Items[i].Key() == key {
			// Merge in place: the line keeps its position.
			l.cart.Items[i].Quantity += quantity
			l.notify()
			return nil
		}
	}

	l.cart.Items = append(l.cart.Items, domain.CartItem{
		Product:   p,
		Selection: sel,
		Quantity:  quantity,
		AddedAt:   l.now(),
	})
	l.notify()

	return nil
}

func (l *cartLedger) SetQuantity(key domain.LineKey, quantity int) bool {
	if quantity <= 0 {
		// A zero quantity is not a state a line can hold.
		return l.Remove(key)
	}

	for i := range l.cart.Items {
		if l.cart.Items[i].Key() == key {
			l.cart.Items[i].Quantity = quantity
			l.notify()
			return true
		}
	}

	// Unknown line: no-op, not an error.
	return false
}

func (l *cartLedger) Remove(key domain.LineKey) bool {
	for i := range l.cart.Items {
		if l.cart.Items[i].Key() == key {
			l.cart.Items = slices.Delete(l.cart.Items, i, i+1)
			l.notify()
			return true
		}
	}

	return false
}

// Cart returns a snapshot; mutating it does not affect the ledger.
func (l *cartLedger) Cart() domain.Cart {
	snap := l.cart
	snap.Items = slices.Clone(l.cart.Items)
	return snap
}

func (l *cartLedger) ItemCount() int {
	return l.cart.ItemCount()
}

func (l *cartLedger) LineCount() int {
	return l.cart.LineCount()
}

func (l *cartLedger) Subtotal() domain.Money {
	return l.cart.Subtotal()
}

func (l *cartLedger) Subscribe(listener port.CartListener) {
	l.listeners = append(l.listeners, listener)
}

func (l *cartLedger) notify() {
	if len(l.listeners) == 0 {
		return
	}

	snap := l.Cart()
	for _, listener := range l.listeners {
		listener(snap)
	}
}
