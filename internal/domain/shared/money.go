// internal/domain/shared/money.go
package shared

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount in a single currency. Every operation returns
// a new value; arithmetic across currencies is rejected.
type Money struct {
	Amount   decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	Currency string          `gorm:"size:3;not null" json:"currency"`
}

// NewMoney validates and builds a Money value.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount cannot be negative", ErrInvalidValue)
	}
	if strings.TrimSpace(currency) == "" {
		return Money{}, fmt.Errorf("%w: currency cannot be empty", ErrInvalidValue)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Add returns the sum. Fails when currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: cannot add %s and %s", ErrUnitMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Subtract returns the difference. Fails when currencies differ or the result
// would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: cannot subtract %s from %s", ErrUnitMismatch, other.Currency, m.Currency)
	}
	if m.Amount.LessThan(other.Amount) {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrNegativeResult, m.Amount, other.Amount)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// Multiply scales the amount by a non-negative factor.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, fmt.Errorf("%w: factor cannot be negative", ErrInvalidValue)
	}
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}, nil
}

// Equal reports structural equality (amount and currency).
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}
