package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order straight from the database, bypassing
// the aggregate. Returns ObjectNotFound when no row matches.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup by id or order number.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row orderRow
	var tx *gorm.DB
	if query.OrderID() != nil {
		tx = h.db.WithContext(ctx).Raw(
			`SELECT `+orderColumns+` FROM orders WHERE id = ?`,
			query.OrderID().String(),
		)
	} else {
		tx = h.db.WithContext(ctx).Raw(
			`SELECT `+orderColumns+` FROM orders WHERE order_number = ?`,
			query.Number().String(),
		)
	}

	if err := tx.Scan(&row).Error; err != nil {
		return GetOrderQueryResponse{}, err
	}
	if row.OrderNumber == "" {
		return GetOrderQueryResponse{}, h.notFound(query)
	}

	products, err := loadProducts(ctx, h.db, row.ID.String())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return row.toResponse(products)
}

func (h GetOrderQueryHandler) notFound(query GetOrderQuery) error {
	if query.OrderID() != nil {
		return errs.NewObjectNotFoundError("order", query.OrderID())
	}
	return errs.NewObjectNotFoundError("order", query.Number().String())
}

// loadProducts reads the line items of one order in insertion order.
func loadProducts(ctx context.Context, db *gorm.DB, orderID string) ([]ProductView, error) {
	var rows []productRow
	err := db.WithContext(ctx).Raw(`
		SELECT order_id, product_id, name, unit_price, quantity, seller_id, delivery_date
		FROM order_products
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	products := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := row.toView()
		if viewErr != nil {
			return nil, viewErr
		}
		products = append(products, view)
	}

	return products, nil
}
