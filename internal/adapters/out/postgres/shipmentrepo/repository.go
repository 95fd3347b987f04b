package shipmentrepo

import (
	"context"
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save persists the aggregate across its three tables. Contact and shipment
// rows are upserted by primary key; the latest movement is inserted once and
// never rewritten, keeping the movement log append-only.
func (r *GormShipmentRepository) Save(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, sender, receiver, movement := fromDomain(aggregate)

	upsert := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true})
	if err := upsert.Create(&sender).Error; err != nil {
		return err
	}
	if err := upsert.Create(&receiver).Error; err != nil {
		return err
	}
	if err := upsert.Create(&dto).Error; err != nil {
		return err
	}

	if movement != nil {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(movement).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByTrackingNumber retrieves a shipment aggregate by its customer-facing
// identifier, hydrating both contacts and the latest movement. Only the
// latest movement is loaded; the full history is served by the read side.
func (r *GormShipmentRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber shipment.TrackingNumber,
) (*shipment.Shipment, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
		}
		return nil, err
	}

	var sender ContactDTO
	if err = r.db.WithContext(ctx).First(&sender, "id = ?", dto.SenderID).Error; err != nil {
		return nil, err
	}

	var receiver ContactDTO
	if err = r.db.WithContext(ctx).First(&receiver, "id = ?", dto.ReceiverID).Error; err != nil {
		return nil, err
	}

	movement, err := r.latestMovement(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, sender, receiver, movement)
}

func (r *GormShipmentRepository) latestMovement(ctx context.Context, shipmentID any) (*MovementDTO, error) {
	var movement MovementDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("occurred_at DESC").
		First(&movement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &movement, nil
}
