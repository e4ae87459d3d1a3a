// internal/domain/shared/money_test.go
package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromFloat(19.99), "USD")
	require.NoError(t, err)
	assert.Equal(t, "19.99 USD", m.String())

	_, err = NewMoney(decimal.NewFromInt(-1), "USD")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewMoney(decimal.NewFromInt(10), "  ")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestMoneyAdd(t *testing.T) {
	a, _ := NewMoney(decimal.NewFromFloat(10.50), "USD")
	b, _ := NewMoney(decimal.NewFromFloat(4.50), "USD")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "15.00 USD", sum.String())

	// operands are untouched
	assert.Equal(t, "10.50 USD", a.String())

	eur, _ := NewMoney(decimal.NewFromInt(5), "EUR")
	_, err = a.Add(eur)
	assert.ErrorIs(t, err, ErrUnitMismatch)
}

func TestMoneySubtract(t *testing.T) {
	a, _ := NewMoney(decimal.NewFromInt(10), "USD")
	b, _ := NewMoney(decimal.NewFromInt(4), "USD")

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "6.00 USD", diff.String())

	_, err = b.Subtract(a)
	assert.ErrorIs(t, err, ErrNegativeResult)

	eur, _ := NewMoney(decimal.NewFromInt(1), "EUR")
	_, err = a.Subtract(eur)
	assert.ErrorIs(t, err, ErrUnitMismatch)
}

func TestMoneyMultiply(t *testing.T) {
	price, _ := NewMoney(decimal.NewFromFloat(2.50), "USD")

	total, err := price.Multiply(decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, "25.00 USD", total.String())

	_, err = price.Multiply(decimal.NewFromInt(-2))
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestMoneyEqual(t *testing.T) {
	a, _ := NewMoney(decimal.NewFromFloat(5.00), "USD")
	b, _ := NewMoney(decimal.NewFromInt(5), "USD")
	c, _ := NewMoney(decimal.NewFromInt(5), "EUR")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestZeroMoney(t *testing.T) {
	z := ZeroMoney("USD")
	assert.True(t, z.IsZero())
	assert.Equal(t, "USD", z.Currency)
}
