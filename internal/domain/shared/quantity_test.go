// internal/domain/shared/quantity_test.go
package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	q, err := NewQuantity(decimal.NewFromFloat(2.5), "kg")
	require.NoError(t, err)
	assert.Equal(t, "2.5 kg", q.String())

	_, err = NewQuantity(decimal.NewFromInt(-1), "kg")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewQuantity(decimal.NewFromInt(1), "")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestQuantityAdd(t *testing.T) {
	a, _ := NewQuantity(decimal.NewFromInt(2), "kg")
	b, _ := NewQuantity(decimal.NewFromInt(3), "kg")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Value.Equal(decimal.NewFromInt(5)))

	lb, _ := NewQuantity(decimal.NewFromInt(1), "lb")
	_, err = a.Add(lb)
	assert.ErrorIs(t, err, ErrUnitMismatch)
}

func TestQuantitySubtract(t *testing.T) {
	a, _ := NewQuantity(decimal.NewFromInt(5), "kg")
	b, _ := NewQuantity(decimal.NewFromInt(2), "kg")

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Value.Equal(decimal.NewFromInt(3)))

	_, err = b.Subtract(a)
	assert.ErrorIs(t, err, ErrNegativeResult)

	lb, _ := NewQuantity(decimal.NewFromInt(1), "lb")
	_, err = a.Subtract(lb)
	assert.ErrorIs(t, err, ErrUnitMismatch)
}

func TestQuantityEqual(t *testing.T) {
	a, _ := NewQuantity(decimal.NewFromFloat(2.0), "kg")
	b, _ := NewQuantity(decimal.NewFromInt(2), "kg")
	c, _ := NewQuantity(decimal.NewFromInt(2), "lb")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
