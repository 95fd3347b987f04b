package shipment

import (
	"errors"
	"time"

	"shipments/internal/core/domain/model/kernel"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment or RestoreShipment factory methods.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment constructor")

// Shipment is the aggregate root of the tracking domain. It models a
// package's lifecycle from creation to delivery and is the only consistency
// boundary through which tracking state changes.
//
// Shipment follows these invariants:
//   - Sender and receiver are each independently valid Contact values;
//     the aggregate never holds a Contact that failed validation
//   - The tracking number is assigned once at creation and never reassigned
//   - Status always belongs to the closed Status enumeration
//   - Can only be created through NewShipment or RestoreShipment
//
// The aggregate is effectively immutable: RecordMovement returns a new
// instance rather than mutating the receiver, so a stale reference can never
// silently diverge from the persisted state. There is no check that sender
// and receiver differ; self-addressed shipments are accepted.
type Shipment struct {
	// id is the internal unique identifier, assigned at creation
	id kernel.UUID

	// trackingNumber is the customer-facing identifier, assigned once
	trackingNumber TrackingNumber

	// status is the current lifecycle state
	status Status

	// sender and receiver are the two parties of the shipment
	sender   Contact
	receiver Contact

	// pack holds the physical measurements used for billing weight
	pack PackageDimensions

	// declaredValue is the monetary value declared for the package
	declaredValue DeclaredValue

	createdAt           time.Time
	estimatedDeliveryAt time.Time

	// lastMovement is the most recent tracking event, nil before the first
	// movement is recorded. Only the latest movement is hydrated; full
	// history lives behind a separate read-only query.
	lastMovement *Movement

	// isConstructed ensures the shipment was created via a factory
	isConstructed bool
}

// NewShipment registers a new shipment between two contacts. It assigns a
// fresh id and tracking number, sets status Created, and stamps the creation
// time. The estimated delivery time is set to the creation instant as well;
// no delivery estimation rule exists yet.
func NewShipment(
	sender Contact,
	receiver Contact,
	pack PackageDimensions,
	declaredValue DeclaredValue,
) (*Shipment, error) {
	now := time.Now().UTC()
	shipment := &Shipment{
		id:                  kernel.NewUUID(),
		trackingNumber:      NewTrackingNumber(),
		status:              Created,
		createdAt:           now,
		estimatedDeliveryAt: now,
		isConstructed:       true,
	}

	if err := errors.Join(
		shipment.setSender(sender),
		shipment.setReceiver(receiver),
		shipment.setPackage(pack),
		shipment.setDeclaredValue(declaredValue),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// RestoreShipment reconstructs a Shipment from already-trusted stored data.
// Reserved for the persistence mapping layer; no re-validation occurs.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	status Status,
	sender Contact,
	receiver Contact,
	pack PackageDimensions,
	declaredValue DeclaredValue,
	createdAt time.Time,
	estimatedDeliveryAt time.Time,
	lastMovement *Movement,
) *Shipment {
	return &Shipment{
		id:                  id,
		trackingNumber:      trackingNumber,
		status:              status,
		sender:              sender,
		receiver:            receiver,
		pack:                pack,
		declaredValue:       declaredValue,
		createdAt:           createdAt,
		estimatedDeliveryAt: estimatedDeliveryAt,
		lastMovement:        lastMovement,
		isConstructed:       true,
	}
}

// Validate ensures the Shipment instance was properly constructed through a
// factory. This prevents bypassing validation by directly instantiating the
// struct.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's internal unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// TrackingNumber returns the customer-facing identifier.
func (s *Shipment) TrackingNumber() TrackingNumber { return s.trackingNumber }

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status { return s.status }

// Sender returns the sending party.
func (s *Shipment) Sender() Contact { return s.sender }

// Receiver returns the receiving party.
func (s *Shipment) Receiver() Contact { return s.receiver }

// Package returns the package measurements.
func (s *Shipment) Package() PackageDimensions { return s.pack }

// DeclaredValue returns the declared monetary value.
func (s *Shipment) DeclaredValue() DeclaredValue { return s.declaredValue }

// CreatedAt returns the registration time.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// EstimatedDeliveryAt returns the estimated delivery time.
func (s *Shipment) EstimatedDeliveryAt() time.Time { return s.estimatedDeliveryAt }

// LastMovement returns the most recent tracking event, or nil before the
// first movement is recorded.
func (s *Shipment) LastMovement() *Movement { return s.lastMovement }

// BillableWeightKg returns the weight used for pricing: the greater of the
// package's physical and volumetric weight.
func (s *Shipment) BillableWeightKg() float64 {
	return s.pack.BillableWeightKg()
}

// RecordMovement registers a tracking event and advances the shipment's
// status to the event's status. It returns a NEW aggregate instance with
// status and lastMovement replaced; the receiver is left untouched and
// callers must persist the returned instance.
//
// The status name must belong to the closed enumeration, but no transition
// rule is enforced between the current and the new status: any status may
// follow any other until business rules say otherwise.
func (s *Shipment) RecordMovement(branchID, routeID, statusName, location string) (*Shipment, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	status, err := StatusFromString(statusName)
	if err != nil {
		return nil, err
	}

	movement, err := NewMovement(branchID, routeID, status, location)
	if err != nil {
		return nil, err
	}

	moved := *s
	moved.status = movement.Status()
	moved.lastMovement = movement
	return &moved, nil
}

func (s *Shipment) setSender(sender Contact) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	s.sender = sender
	return nil
}

func (s *Shipment) setReceiver(receiver Contact) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	s.receiver = receiver
	return nil
}

func (s *Shipment) setPackage(pack PackageDimensions) error {
	if err := pack.Validate(); err != nil {
		return err
	}
	s.pack = pack
	return nil
}

func (s *Shipment) setDeclaredValue(declaredValue DeclaredValue) error {
	if err := declaredValue.Validate(); err != nil {
		return err
	}
	s.declaredValue = declaredValue
	return nil
}
