package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Writes are version-guarded: Update fails with a concurrent modification
// error when the stored version no longer matches the aggregate's.
type OrderRepository interface {
	// Add persists a new order aggregate together with its tracking entries.
	// A duplicate order number surfaces as order.ErrNumberGenerationConflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and appends any
	// tracking entries recorded since it was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its full tracking history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its order number.
	GetByNumber(ctx context.Context, number order.OrderNumber) (*order.Order, error)

	// GetAllOverdue retrieves orders still out for delivery whose estimated
	// delivery date passed before the given moment.
	GetAllOverdue(ctx context.Context, before time.Time) ([]*order.Order, error)
}
