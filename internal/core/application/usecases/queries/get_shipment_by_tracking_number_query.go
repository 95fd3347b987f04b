// Package queries contains read-only operations for the CQRS read side.
// Query handlers go straight to the database and return plain response
// structures; they never load domain aggregates.
package queries

import (
	"errors"
	"time"

	"shipments/internal/pkg/guard"
)

var (
	ErrGetShipmentByTrackingNumberQueryIsNotConstructed = errors.New(
		"GetShipmentByTrackingNumberQuery must be created via NewGetShipmentByTrackingNumberQuery constructor",
	)
	ErrQueryTrackingNumberIsRequired = errors.New("trackingNumber is required")
)

// GetShipmentByTrackingNumberQuery retrieves the current state of one
// shipment by its customer-facing tracking number.
//
// Example:
//
//	query, err := NewGetShipmentByTrackingNumberQuery("TRK12345")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetShipmentByTrackingNumberQueryHandler(db)
//	s, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s is %s\n", s.TrackingNumber, s.Status)
type GetShipmentByTrackingNumberQuery struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetShipmentByTrackingNumberQuery creates a query for one shipment.
// Validates that the tracking number is present.
func NewGetShipmentByTrackingNumberQuery(trackingNumber string) (GetShipmentByTrackingNumberQuery, error) {
	query := GetShipmentByTrackingNumberQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackingNumber(trackingNumber); err != nil {
		return GetShipmentByTrackingNumberQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentByTrackingNumberQueryIsNotConstructed if validation fails.
func (q GetShipmentByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingNumberQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number identifying the shipment.
func (q GetShipmentByTrackingNumberQuery) TrackingNumber() string {
	return q.trackingNumber
}

func (q *GetShipmentByTrackingNumberQuery) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrQueryTrackingNumberIsRequired
	}

	q.trackingNumber = trackingNumber
	return nil
}

// LastMovementResponse is the latest tracking event of a shipment, when one
// has been recorded.
type LastMovementResponse struct {
	BranchID   string
	RouteID    string
	Status     string
	Location   string
	OccurredAt time.Time
}

// GetShipmentByTrackingNumberQueryResponse is the read model of one shipment.
type GetShipmentByTrackingNumberQueryResponse struct {
	TrackingNumber      string
	Status              string
	SenderName          string
	ReceiverName        string
	HeightCm            float64
	WidthCm             float64
	LengthCm            float64
	WeightKg            float64
	DeclaredValue       float64
	CreatedAt           time.Time
	EstimatedDeliveryAt time.Time
	LastMovement        *LastMovementResponse
}
