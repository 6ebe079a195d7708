package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// AssignDriverCommandHandler puts a driver on an order before delivery.
type AssignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory OrderUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.AssignDriver(cmd.DriverID(), cmd.Actor())
	})
	return err
}
