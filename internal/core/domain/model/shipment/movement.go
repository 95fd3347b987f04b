package shipment

import (
	"errors"
	"strings"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/errs"
)

// ErrMovementIsNotConstructed is returned when a Movement instance was not
// created through NewMovement or RestoreMovement.
var ErrMovementIsNotConstructed = errors.New(
	"Movement must be created via NewMovement constructor")

// Movement records a single tracking event in a shipment's history: the
// package was scanned at a branch, on a route, with a new status. Movements
// are immutable once constructed; the persistence layer retains the full
// history ordered by occurrence time, while the aggregate only hydrates the
// most recent one.
type Movement struct {
	id         kernel.UUID
	branchID   string
	routeID    string
	status     Status
	location   string
	occurredAt time.Time

	isConstructed bool
}

// NewMovement creates a tracking event occurring now. Branch id and location
// must be non-empty after trimming and the status must belong to the closed
// set; the route id is optional.
func NewMovement(branchID, routeID string, status Status, location string) (*Movement, error) {
	movement := &Movement{
		id:            kernel.NewUUID(),
		routeID:       strings.TrimSpace(routeID),
		occurredAt:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		movement.setBranchID(branchID),
		movement.setStatus(status),
		movement.setLocation(location),
	); err != nil {
		return nil, err
	}

	return movement, nil
}

// RestoreMovement reconstructs a Movement from already-trusted stored data,
// preserving its original id and occurrence time. Reserved for the
// persistence mapping layer.
func RestoreMovement(
	id kernel.UUID,
	branchID, routeID string,
	status Status,
	location string,
	occurredAt time.Time,
) *Movement {
	return &Movement{
		id:            id,
		branchID:      branchID,
		routeID:       routeID,
		status:        status,
		location:      location,
		occurredAt:    occurredAt,
		isConstructed: true,
	}
}

// Validate ensures the Movement was created through a constructor.
func (m *Movement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMovementIsNotConstructed
	}
	return nil
}

// ID returns the movement's unique identifier.
func (m *Movement) ID() kernel.UUID { return m.id }

// BranchID returns the identifier of the branch that registered the event.
func (m *Movement) BranchID() string { return m.branchID }

// RouteID returns the identifier of the route, empty when not on a route.
func (m *Movement) RouteID() string { return m.routeID }

// Status returns the shipment status this movement advanced to.
func (m *Movement) Status() Status { return m.status }

// Location returns the human-readable location of the event.
func (m *Movement) Location() string { return m.location }

// OccurredAt returns the moment the event was registered.
func (m *Movement) OccurredAt() time.Time { return m.occurredAt }

func (m *Movement) setBranchID(branchID string) error {
	trimmed := strings.TrimSpace(branchID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("branchId")
	}

	m.branchID = trimmed
	return nil
}

func (m *Movement) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	m.status = status
	return nil
}

func (m *Movement) setLocation(location string) error {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("location")
	}

	m.location = trimmed
	return nil
}
