package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves an order along its lifecycle and
// appends the matching tracking entry. Concurrent writers are resolved by
// reloading the aggregate and reapplying the transition.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.StatusNotifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.StatusNotifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status update command and notifies interested parties
// once the change is committed.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.UpdateStatus(cmd.Next(), cmd.Actor(), cmd.Location(), cmd.Description())
	})
	if err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(ctx, event)
	return nil
}
