package domain_test

import (
	"testing"

	"github.com/glamourbeauty/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestMoneyArithmeticKeepsPrecision(t *testing.T) {
	m := domain.NewMoney(decimal.RequireFromString("10.333"), currency.USD)

	tripled := m.Mul(3)

	// 30.999 internally, 31.00 only at display time
	assert.True(t, tripled.Amount.Equal(decimal.RequireFromString("30.999")))
	assert.Equal(t, "31.00", tripled.Display())
}

func TestMoneyAddSub(t *testing.T) {
	a := domain.NewMoney(decimal.RequireFromString("45.99"), currency.USD)
	b := domain.NewMoney(decimal.RequireFromString("34.99"), currency.USD)

	sum := a.Add(b)
	assert.Equal(t, "80.98", sum.Display())

	diff := a.Sub(b)
	assert.Equal(t, "11.00", diff.Display())
	assert.False(t, diff.IsZero())

	assert.True(t, a.Sub(a).IsZero())
}

func TestMoneyString(t *testing.T) {
	m := domain.NewMoney(decimal.RequireFromString("125"), currency.USD)

	assert.Equal(t, "USD 125.00", m.String())
}
