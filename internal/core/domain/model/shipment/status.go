package shipment

import (
	"fmt"
	"strings"

	"shipments/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment. The enumeration is
// closed: a Status can only be constructed from the fixed set below. The
// aggregate places no restriction on which status may follow which; any
// member of the set is a legal successor of any other.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned when a shipment is registered.
	Created

	// Processing indicates the shipment is being prepared at origin.
	Processing

	// PickupPending indicates a pickup has been scheduled but not executed.
	PickupPending

	// PickedUp indicates the carrier has collected the package.
	PickedUp

	// InTransit indicates the package is moving between branches.
	InTransit

	// InCustoms indicates the package is held for customs clearance.
	InCustoms

	// OutForDelivery indicates the package is on its final delivery route.
	OutForDelivery

	// Delivered indicates the package reached the receiver.
	Delivered

	// Rescheduled indicates a failed delivery attempt with a new date set.
	Rescheduled

	// Cancelled indicates the shipment was cancelled.
	Cancelled

	// Returned indicates the package was sent back to the sender.
	Returned

	// Rejected indicates the receiver refused the package.
	Rejected
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Created:        "Created",
		Processing:     "Processing",
		PickupPending:  "PickupPending",
		PickedUp:       "PickedUp",
		InTransit:      "InTransit",
		InCustoms:      "InCustoms",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Rescheduled:    "Rescheduled",
		Cancelled:      "Cancelled",
		Returned:       "Returned",
		Rejected:       "Rejected",
	}
}

// getValidStatuses returns the closed set of valid statuses keyed by their
// string names. Unknown is intentionally excluded.
func getValidStatuses() map[string]Status {
	return map[string]Status{
		"Created":        Created,
		"Processing":     Processing,
		"PickupPending":  PickupPending,
		"PickedUp":       PickedUp,
		"InTransit":      InTransit,
		"InCustoms":      InCustoms,
		"OutForDelivery": OutForDelivery,
		"Delivered":      Delivered,
		"Rescheduled":    Rescheduled,
		"Cancelled":      Cancelled,
		"Returned":       Returned,
		"Rejected":       Rejected,
	}
}

// StatusFromString constructs a Status from its string name. The factory
// fails for names outside the fixed set; an empty name is reported as a
// required-value failure.
func StatusFromString(name string) (Status, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}

	status, ok := getValidStatuses()[trimmed]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a recognized status", trimmed),
		)
	}

	return status, nil
}

// RestoreStatus reconstructs a Status from an already-trusted stored name
// without failing. Unrecognized names map to Unknown; this path is reserved
// for the persistence mapping layer.
func RestoreStatus(name string) Status {
	if status, ok := getValidStatuses()[strings.TrimSpace(name)]; ok {
		return status
	}
	return Unknown
}

// Validate checks if the Status value belongs to the closed set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status. It implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
