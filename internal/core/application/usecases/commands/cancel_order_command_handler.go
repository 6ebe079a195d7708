package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler cancels an undelivered order and records the
// reason in the tracking ledger.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.StatusNotifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.StatusNotifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.Cancel(cmd.Reason(), cmd.Actor())
	})
	if err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(ctx, event)
	return nil
}
