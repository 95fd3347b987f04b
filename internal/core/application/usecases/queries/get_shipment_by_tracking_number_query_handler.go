package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipments/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentByTrackingNumberQueryHandler retrieves one shipment's read model
// from the database, joining both contact rows and the latest movement.
//
// Example:
//
//	handler := NewGetShipmentByTrackingNumberQueryHandler(db)
//	query, _ := NewGetShipmentByTrackingNumberQuery("TRK12345")
//
//	s, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get shipment: %v", err)
//	    return err
//	}
type GetShipmentByTrackingNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByTrackingNumberQueryHandler creates a handler for single
// shipment lookups. Requires a GORM database connection for query execution.
func NewGetShipmentByTrackingNumberQueryHandler(db *gorm.DB) GetShipmentByTrackingNumberQueryHandler {
	return GetShipmentByTrackingNumberQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when no
// shipment carries the tracking number. The latest movement is attached when
// at least one has been recorded.
func (h GetShipmentByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingNumberQuery,
) (GetShipmentByTrackingNumberQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentByTrackingNumberQueryResponse{}, err
	}

	var response GetShipmentByTrackingNumberQueryResponse
	var shipmentID string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.tracking_number,
			s.status,
			sender.first_name || ' ' || sender.last_name,
			receiver.first_name || ' ' || receiver.last_name,
			s.package_height_cm,
			s.package_width_cm,
			s.package_length_cm,
			s.package_weight_kg,
			s.declared_value,
			s.created_at,
			s.estimated_delivery_at
		FROM shipments s
		JOIN contacts sender ON sender.id = s.sender_id
		JOIN contacts receiver ON receiver.id = s.receiver_id
		WHERE s.tracking_number = ?
	`, query.TrackingNumber()).Row()

	err := row.Scan(
		&shipmentID,
		&response.TrackingNumber,
		&response.Status,
		&response.SenderName,
		&response.ReceiverName,
		&response.HeightCm,
		&response.WidthCm,
		&response.LengthCm,
		&response.WeightKg,
		&response.DeclaredValue,
		&response.CreatedAt,
		&response.EstimatedDeliveryAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentByTrackingNumberQueryResponse{},
			errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
	}
	if err != nil {
		return GetShipmentByTrackingNumberQueryResponse{}, err
	}

	lastMovement, err := h.latestMovement(ctx, shipmentID)
	if err != nil {
		return GetShipmentByTrackingNumberQueryResponse{}, err
	}
	response.LastMovement = lastMovement

	return response, nil
}

func (h GetShipmentByTrackingNumberQueryHandler) latestMovement(
	ctx context.Context,
	shipmentID string,
) (*LastMovementResponse, error) {
	var movement LastMovementResponse
	var occurredAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			branch_id,
			route_id,
			status,
			location,
			occurred_at
		FROM movements
		WHERE shipment_id = ?
		ORDER BY occurred_at DESC
		LIMIT 1
	`, shipmentID).Row()

	err := row.Scan(
		&movement.BranchID,
		&movement.RouteID,
		&movement.Status,
		&movement.Location,
		&occurredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	movement.OccurredAt = occurredAt
	return &movement, nil
}
