package queries

import (
	"context"

	"gorm.io/gorm"
)

// SearchOrdersQueryHandler finds orders matching a free-text term. Results
// are capped at 50, newest order first.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order search.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle executes the search. The term is matched with ILIKE against the
// order number, line item names, the shipping recipient and city, and notes.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := "%" + query.Term() + "%"

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE order_number ILIKE @pattern
		   OR shipping_name ILIKE @pattern
		   OR shipping_city ILIKE @pattern
		   OR notes ILIKE @pattern
		   OR id IN (
		        SELECT order_id FROM order_products WHERE name ILIKE @pattern
		   )
		ORDER BY created_at DESC
		LIMIT @limit
	`, map[string]any{"pattern": pattern, "limit": searchResultLimit}).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return collectOrderResponses(ctx, h.db, rows)
}

// collectOrderResponses attaches line items to a page of order rows.
func collectOrderResponses(
	ctx context.Context,
	db *gorm.DB,
	rows []orderRow,
) ([]GetOrderQueryResponse, error) {
	responses := make([]GetOrderQueryResponse, 0, len(rows))
	for _, row := range rows {
		products, err := loadProducts(ctx, db, row.ID.String())
		if err != nil {
			return nil, err
		}

		response, err := row.toResponse(products)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, nil
}
