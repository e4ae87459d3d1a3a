// internal/domain/shared/errors.go
package shared

import "errors"

// Domain error kinds. Every invariant violation wraps one of these with
// fmt.Errorf("%w: ...") so callers can classify with errors.Is.
var (
	ErrInvalidValue      = errors.New("invalid value")
	ErrUnitMismatch      = errors.New("unit mismatch")
	ErrNegativeResult    = errors.New("result would be negative")
	ErrInsufficientStock = errors.New("insufficient available stock")
	ErrOverRelease       = errors.New("cannot release more than reserved")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyOrder        = errors.New("order has no lines")
	ErrOverPick          = errors.New("cannot pick more than ordered")
	ErrOverShip          = errors.New("cannot ship more than picked")
	ErrNotFound          = errors.New("not found")
)
