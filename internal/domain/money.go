package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money keeps the full decimal precision of its amount. Rounding to
// currency precision happens only in Display, never during arithmetic.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// Mul scales the amount by a whole number of units.
func (m Money) Mul(n int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(n))),
		Currency: m.Currency,
	}
}

// Add assumes both operands share a currency; carts are single-currency.
func (m Money) Add(other Money) Money {
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}
}

func (m Money) Sub(other Money) Money {
	return Money{
		Amount:   m.Amount.Sub(other.Amount),
		Currency: m.Currency,
	}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Display renders the amount at currency precision, e.g. "45.99".
func (m Money) Display() string {
	return m.Amount.StringFixed(2)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Display())
}
