package queries

import (
	"errors"
	"time"

	"shipments/internal/pkg/guard"
)

var ErrGetMovementHistoryQueryIsNotConstructed = errors.New(
	"GetMovementHistoryQuery must be created via NewGetMovementHistoryQuery constructor",
)

// GetMovementHistoryQuery retrieves the full tracking history of one
// shipment, oldest event first.
//
// Example:
//
//	query, _ := NewGetMovementHistoryQuery("TRK12345")
//	handler := NewGetMovementHistoryQueryHandler(db)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get movement history: %w", err)
//	}
//	for _, event := range history {
//	    fmt.Printf("%s %s at %s\n", event.OccurredAt, event.Status, event.Location)
//	}
type GetMovementHistoryQuery struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetMovementHistoryQuery creates a query for a shipment's tracking
// history. Validates that the tracking number is present.
func NewGetMovementHistoryQuery(trackingNumber string) (GetMovementHistoryQuery, error) {
	query := GetMovementHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackingNumber(trackingNumber); err != nil {
		return GetMovementHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMovementHistoryQueryIsNotConstructed if validation fails.
func (q GetMovementHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetMovementHistoryQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number identifying the shipment.
func (q GetMovementHistoryQuery) TrackingNumber() string {
	return q.trackingNumber
}

func (q *GetMovementHistoryQuery) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrQueryTrackingNumberIsRequired
	}

	q.trackingNumber = trackingNumber
	return nil
}

// GetMovementHistoryQueryResponse is one tracking event in a shipment's
// history.
type GetMovementHistoryQueryResponse struct {
	BranchID   string
	RouteID    string
	Status     string
	Location   string
	OccurredAt time.Time
}
