package queries

import (
	"context"

	"shipments/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMovementHistoryQueryHandler retrieves the complete tracking history of
// one shipment from the database.
//
// Example:
//
//	handler := NewGetMovementHistoryQueryHandler(db)
//	query, _ := NewGetMovementHistoryQuery("TRK12345")
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get history: %v", err)
//	    return err
//	}
type GetMovementHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetMovementHistoryQueryHandler creates a handler for tracking history
// queries. Requires a GORM database connection for query execution.
func NewGetMovementHistoryQueryHandler(db *gorm.DB) GetMovementHistoryQueryHandler {
	return GetMovementHistoryQueryHandler{db: db}
}

// Handle executes the history query. Returns errs.ObjectNotFoundError when
// no shipment carries the tracking number; a shipment without movements
// yields an empty slice. Events are sorted oldest first.
func (h GetMovementHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetMovementHistoryQuery,
) ([]GetMovementHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS(SELECT 1 FROM shipments WHERE tracking_number = ?)
	`, query.TrackingNumber()).Row().Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
	}

	history := make([]GetMovementHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.branch_id,
			m.route_id,
			m.status,
			m.location,
			m.occurred_at
		FROM movements m
		JOIN shipments s ON s.id = m.shipment_id
		WHERE s.tracking_number = ?
		ORDER BY m.occurred_at
	`, query.TrackingNumber()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetMovementHistoryQueryResponse

		err = rows.Scan(
			&event.BranchID,
			&event.RouteID,
			&event.Status,
			&event.Location,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		history = append(history, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
