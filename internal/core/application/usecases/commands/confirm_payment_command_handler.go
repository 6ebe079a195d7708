package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// ConfirmPaymentCommandHandler records a settled payment on an order still
// awaiting fulfillment. The status and the tracking ledger are untouched.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment confirmation command.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.ConfirmPayment(cmd.TransactionID(), cmd.PaidAt())
	})
	return err
}
