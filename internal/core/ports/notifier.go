package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// StatusChangedEvent describes a committed order status change that outside
// parties (customer, seller, driver) should hear about.
type StatusChangedEvent struct {
	OrderID     kernel.UUID
	OrderNumber order.OrderNumber
	CustomerID  kernel.UUID
	Previous    order.Status
	Current     order.Status
}

// StatusNotifier publishes order status changes after the owning transaction
// commits. Implementations must not fail the business operation: delivery is
// best effort and errors are logged, not returned to the caller.
type StatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, event StatusChangedEvent)
}
