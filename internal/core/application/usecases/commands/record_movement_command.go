package commands

import (
	"errors"

	"shipments/internal/pkg/guard"
)

var (
	ErrRecordMovementCommandIsNotConstructed = errors.New(
		"RecordMovementCommand must be created via NewRecordMovementCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("trackingNumber is required")
)

// RecordMovementCommand represents a request to register a tracking event
// against an existing shipment, advancing its status. BranchID, status and
// location are validated by the aggregate during handling; routeID is
// optional.
//
// Example:
//
//	cmd, err := NewRecordMovementCommand(trackingNumber, "BR-001", "RT-0042", "InTransit", "Mexico City hub")
//	if err != nil {
//	    return fmt.Errorf("invalid movement data: %w", err)
//	}
//
//	handler := NewRecordMovementCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record movement: %w", err)
//	}
type RecordMovementCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	branchID       string
	routeID        string
	status         string
	location       string

	guard guard.ConstructorGuard
}

// NewRecordMovementCommand creates a command to record a tracking event.
// Validates that the tracking number is present; the remaining fields are
// checked against the aggregate's rules during handling.
func NewRecordMovementCommand(
	trackingNumber, branchID, routeID, status, location string,
) (RecordMovementCommand, error) {
	movementCommand := RecordMovementCommand{
		branchID: branchID,
		routeID:  routeID,
		status:   status,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := movementCommand.setTrackingNumber(trackingNumber); err != nil {
		return RecordMovementCommand{}, err
	}

	return movementCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordMovementCommandIsNotConstructed if validation fails.
func (c RecordMovementCommand) Validate() error {
	return c.guard.Validate(ErrRecordMovementCommandIsNotConstructed)
}

// TrackingNumber returns the tracking number identifying the shipment.
func (c RecordMovementCommand) TrackingNumber() string {
	return c.trackingNumber
}

// BranchID returns the branch where the event occurred.
func (c RecordMovementCommand) BranchID() string {
	return c.branchID
}

// RouteID returns the optional route reference.
func (c RecordMovementCommand) RouteID() string {
	return c.routeID
}

// Status returns the new status name carried by the event.
func (c RecordMovementCommand) Status() string {
	return c.status
}

// Location returns the human-readable event location.
func (c RecordMovementCommand) Location() string {
	return c.location
}

func (c *RecordMovementCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
