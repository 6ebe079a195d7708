package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order along its
// lifecycle (Processing, OutForDelivery, Delivered). Cancellation and refunds
// have dedicated commands.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	next        order.Status
	actor       kernel.UUID
	location    string
	description string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Location and description are optional annotations for the tracking ledger.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	next order.Status,
	actor kernel.UUID,
	location string,
	description string,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNext(next),
		statusCommand.setActor(actor),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	statusCommand.location = location
	statusCommand.description = description
	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Next() order.Status   { return c.next }
func (c UpdateOrderStatusCommand) Actor() kernel.UUID   { return c.actor }
func (c UpdateOrderStatusCommand) Location() string     { return c.location }
func (c UpdateOrderStatusCommand) Description() string  { return c.description }

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
