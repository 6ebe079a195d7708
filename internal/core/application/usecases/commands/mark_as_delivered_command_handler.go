package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// MarkAsDeliveredCommandHandler confirms delivery, stamps the actual delivery
// date, and notifies interested parties once the change is committed.
type MarkAsDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.StatusNotifier
}

// NewMarkAsDeliveredCommandHandler creates a handler for delivery confirmation.
func NewMarkAsDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.StatusNotifier,
) MarkAsDeliveredCommandHandler {
	return MarkAsDeliveredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery confirmation command.
func (h *MarkAsDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkAsDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.MarkAsDelivered(cmd.ProofOfDelivery(), cmd.Actor())
	})
	if err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(ctx, event)
	return nil
}
