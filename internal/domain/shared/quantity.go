// internal/domain/shared/quantity.go
package shared

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity is an immutable magnitude in a single unit of measure, with the
// same arithmetic rules as Money but keyed by unit.
type Quantity struct {
	Value decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"value"`
	Unit  string          `gorm:"size:10;not null" json:"unit"`
}

// NewQuantity validates and builds a Quantity value.
func NewQuantity(value decimal.Decimal, unit string) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidValue)
	}
	if strings.TrimSpace(unit) == "" {
		return Quantity{}, fmt.Errorf("%w: unit cannot be empty", ErrInvalidValue)
	}
	return Quantity{Value: value, Unit: unit}, nil
}

// Add returns the sum. Fails when units differ.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if q.Unit != other.Unit {
		return Quantity{}, fmt.Errorf("%w: cannot add %s and %s", ErrUnitMismatch, q.Unit, other.Unit)
	}
	return Quantity{Value: q.Value.Add(other.Value), Unit: q.Unit}, nil
}

// Subtract returns the difference. Fails when units differ or the result
// would be negative.
func (q Quantity) Subtract(other Quantity) (Quantity, error) {
	if q.Unit != other.Unit {
		return Quantity{}, fmt.Errorf("%w: cannot subtract %s from %s", ErrUnitMismatch, other.Unit, q.Unit)
	}
	if q.Value.LessThan(other.Value) {
		return Quantity{}, fmt.Errorf("%w: %s - %s", ErrNegativeResult, q.Value, other.Value)
	}
	return Quantity{Value: q.Value.Sub(other.Value), Unit: q.Unit}, nil
}

// Equal reports structural equality (value and unit).
func (q Quantity) Equal(other Quantity) bool {
	return q.Unit == other.Unit && q.Value.Equal(other.Value)
}

func (q Quantity) String() string {
	return fmt.Sprintf("%s %s", q.Value, q.Unit)
}
