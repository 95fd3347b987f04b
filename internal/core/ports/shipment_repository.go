package ports

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Lookup is keyed by the customer-facing tracking number;
// the internal id stays a storage concern.
type ShipmentRepository interface {
	// Save persists the aggregate: the shipment row, both contact rows and,
	// when present, the latest movement. Existing rows are updated, the
	// movement is append-only.
	Save(ctx context.Context, aggregate *shipment.Shipment) error

	// GetByTrackingNumber retrieves a shipment aggregate with its latest
	// movement. Returns errs.ObjectNotFoundError when no shipment carries
	// the tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber shipment.TrackingNumber) (*shipment.Shipment, error)
}
