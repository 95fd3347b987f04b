package commands

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
)

// RecordMovementCommandHandler handles the business logic for recording a
// tracking event. It loads the aggregate by tracking number, lets the domain
// produce the updated instance, and persists that instance in the same
// transaction.
//
// Read and write happen in separate statements without a row lock, so two
// concurrent movements against the same shipment can interleave and the
// later commit wins the status field. Accepted until movement volume demands
// otherwise.
//
// Example:
//
//	handler := NewRecordMovementCommandHandler(uowFactory)
//	cmd, _ := NewRecordMovementCommand(trackingNumber, "BR-001", "", "Delivered", "Receiver address")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("movement recording failed: %w", err)
//	}
type RecordMovementCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewRecordMovementCommandHandler creates a handler for movement recording.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewRecordMovementCommandHandler(uowFactory ShipmentUoWFactory) RecordMovementCommandHandler {
	return RecordMovementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the movement recording command.
// Returns errs.ObjectNotFoundError when no shipment carries the tracking
// number, and the aggregate's validation error when the event data is
// rejected.
func (h *RecordMovementCommandHandler) Handle(ctx context.Context, cmd RecordMovementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	trackingNumber, err := shipment.TrackingNumberFromString(cmd.TrackingNumber())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return err
	}

	moved, err := aggregate.RecordMovement(cmd.BranchID(), cmd.RouteID(), cmd.Status(), cmd.Location())
	if err != nil {
		return err
	}

	if err = repo.Save(ctx, moved); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
