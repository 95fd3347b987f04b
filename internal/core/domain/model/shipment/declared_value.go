package shipment

import (
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// ErrDeclaredValueIsNotConstructed is returned when validating a zero-value
// DeclaredValue.
var ErrDeclaredValueIsNotConstructed = errs.NewValueIsRequiredError(
	"DeclaredValue must be created via NewDeclaredValue")

// DeclaredValue wraps the monetary value declared for a package. Negative
// amounts are currently accepted; a non-negativity rule is a pending
// business decision.
type DeclaredValue struct {
	amount float64
	guard  guard.ConstructorGuard
}

// NewDeclaredValue creates a DeclaredValue for the given amount.
func NewDeclaredValue(amount float64) (DeclaredValue, error) {
	return DeclaredValue{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreDeclaredValue reconstructs a DeclaredValue from stored data.
// Reserved for the persistence mapping layer.
func RestoreDeclaredValue(amount float64) DeclaredValue {
	return DeclaredValue{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks if the DeclaredValue was properly constructed.
func (d DeclaredValue) Validate() error {
	return d.guard.Validate(ErrDeclaredValueIsNotConstructed)
}

// Amount returns the declared monetary amount.
func (d DeclaredValue) Amount() float64 {
	return d.amount
}
