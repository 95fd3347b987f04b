// Package guard marks domain objects as constructed through their factories.
// Embedding a ConstructorGuard in a value object or entity makes its zero value
// detectably invalid, so code receiving a struct can verify it was produced by
// the designated factory function and not by direct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied. Validation always fails with a meaningful message even
// if the caller did not provide a specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// reports not-constructed, which is what makes the pattern work: a struct
// created without its factory carries a zero guard and fails Validate.
//
// Example:
//
//	var ErrPhoneIsNotConstructed = errors.New("Phone must be created via NewPhone")
//
//	type Phone struct {
//	    number string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPhone(number string) (Phone, error) {
//	    if number == "" {
//	        return Phone{}, errors.New("number is required")
//	    }
//	    return Phone{number: number, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Phone) Validate() error {
//	    return p.guard.Validate(ErrPhoneIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// constructed. Call it only inside factory functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns nil for properly constructed objects, validationError for zero
// values, and ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
