package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingHistoryQueryHandler reads an order's tracking ledger from the
// database, newest entry first.
type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingHistoryQueryHandler creates a handler for ledger reads.
func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle executes the ledger read. An order without a single entry does not
// exist, so that case returns ObjectNotFound.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]GetTrackingHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT sequence, status, timestamp, location, description, updated_by
		FROM order_tracking_events
		WHERE order_id = ?
		ORDER BY sequence DESC
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetTrackingHistoryQueryResponse, 0)
	for rows.Next() {
		var entry GetTrackingHistoryQueryResponse
		var status int
		var timestamp time.Time
		var updatedBy *uuid.UUID

		err = rows.Scan(
			&entry.Sequence,
			&status,
			&timestamp,
			&entry.Location,
			&entry.Description,
			&updatedBy,
		)
		if err != nil {
			return nil, err
		}

		entry.Status = order.Status(status).String()
		entry.Timestamp = timestamp
		if updatedBy != nil {
			actor, idErr := kernel.UUIDFromBytes(updatedBy[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.UpdatedBy = &actor
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return entries, nil
}
