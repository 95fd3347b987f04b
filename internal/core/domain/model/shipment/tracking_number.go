package shipment

import (
	"strings"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrTrackingNumberIsNotConstructed is returned when validating a zero-value
// TrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via NewTrackingNumber or TrackingNumberFromString")

// TrackingNumber is the customer-facing identifier of a shipment, distinct
// from its internal id. It is assigned once at creation and never changes.
type TrackingNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewTrackingNumber generates a fresh tracking number. Generation is a
// stand-in unique value derived from a random UUID; a structured carrier
// format with a checksum has not been decided, so callers must treat the
// value as opaque.
func NewTrackingNumber() TrackingNumber {
	value := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return TrackingNumber{
		value: value,
		guard: guard.NewConstructorGuard(),
	}
}

// TrackingNumberFromString reconstructs a TrackingNumber from its string
// form, as received from the customer or read from the store. Fails for
// empty or whitespace-only input.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return TrackingNumber{
		value: trimmed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the tracking number value.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers by value.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks if the TrackingNumber was properly constructed.
func (t TrackingNumber) Validate() error {
	return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
}
