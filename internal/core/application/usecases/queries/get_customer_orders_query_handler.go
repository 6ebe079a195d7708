package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists a customer's orders, newest first.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order history.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the history read.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = @customer_id`
	params := map[string]any{"customer_id": query.CustomerID().String()}

	if query.Status() != nil {
		sql += ` AND status = @status`
		params["status"] = *query.Status()
	}
	sql += ` ORDER BY created_at DESC`

	var rows []orderRow
	if err := h.db.WithContext(ctx).Raw(sql, params).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return collectOrderResponses(ctx, h.db, rows)
}
