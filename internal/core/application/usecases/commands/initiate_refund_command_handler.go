package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// InitiateRefundCommandHandler moves a cancelled or delivered order into the
// Refunded terminal status and flips the payment snapshot.
type InitiateRefundCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.StatusNotifier
}

// NewInitiateRefundCommandHandler creates a handler for refunds.
func NewInitiateRefundCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.StatusNotifier,
) InitiateRefundCommandHandler {
	return InitiateRefundCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the refund command.
func (h *InitiateRefundCommandHandler) Handle(ctx context.Context, cmd InitiateRefundCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.InitiateRefund(cmd.Reason())
	})
	if err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(ctx, event)
	return nil
}
