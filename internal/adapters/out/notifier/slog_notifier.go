// Package notifier delivers order status change notifications. The current
// implementation writes structured log records; a message broker adapter can
// replace it behind the same port.
package notifier

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
)

// SlogStatusNotifier implements ports.StatusNotifier by emitting a structured
// log record per status change. Notification is best effort and never fails
// the operation that triggered it.
type SlogStatusNotifier struct {
	logger *slog.Logger
}

// NewSlogStatusNotifier creates a notifier writing to the given logger.
func NewSlogStatusNotifier(logger *slog.Logger) *SlogStatusNotifier {
	return &SlogStatusNotifier{logger: logger}
}

// NotifyStatusChanged records the transition for the customer-facing
// notification pipeline.
func (n *SlogStatusNotifier) NotifyStatusChanged(ctx context.Context, event ports.StatusChangedEvent) {
	n.logger.InfoContext(ctx, "order status changed",
		"order_id", event.OrderID.String(),
		"order_number", event.OrderNumber.String(),
		"customer_id", event.CustomerID.String(),
		"previous_status", event.Previous.String(),
		"current_status", event.Current.String(),
	)
}
