package shipment

import (
	"fmt"
	"strings"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError(
	"Phone must be created via NewPhone")

const phoneMinDigits = 7

// Phone is a contact phone number. Formatting characters (spaces, dashes,
// parentheses, a leading plus) are accepted and preserved; the number must
// carry at least phoneMinDigits digits.
type Phone struct { //nolint:recvcheck //using for validation
	number string
	guard  guard.ConstructorGuard
}

// NewPhone creates a validated Phone from its textual form.
func NewPhone(number string) (Phone, error) {
	phone := Phone{
		guard: guard.NewConstructorGuard(),
	}

	if err := phone.setNumber(number); err != nil {
		return Phone{}, err
	}

	return phone, nil
}

// RestorePhone reconstructs a Phone from already-trusted stored data without
// re-validating. Reserved for the persistence mapping layer.
func RestorePhone(number string) Phone {
	return Phone{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}
}

// String returns the phone number as provided, trimmed.
func (p Phone) String() string {
	return p.number
}

// Validate checks if the Phone was properly constructed.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// setNumber validates and sets the number during construction.
func (p *Phone) setNumber(number string) error {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	digits := 0
	for i, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return errs.NewValueIsInvalidErrorWithCause(
				"phone",
				fmt.Errorf("character %q is not allowed in a phone number", r),
			)
		}
	}

	if digits < phoneMinDigits {
		return errs.NewValueIsInvalidErrorWithCause(
			"phone",
			fmt.Errorf("expected at least %d digits, got %d", phoneMinDigits, digits),
		)
	}

	p.number = trimmed
	return nil
}
