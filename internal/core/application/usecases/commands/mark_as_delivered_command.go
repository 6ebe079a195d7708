package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMarkAsDeliveredCommandIsNotConstructed = errors.New(
	"MarkAsDeliveredCommand must be created via NewMarkAsDeliveredCommand constructor",
)

// MarkAsDeliveredCommand represents a delivery confirmation, optionally
// carrying a proof-of-delivery reference (photo key, signature id).
type MarkAsDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actor           kernel.UUID
	proofOfDelivery string

	guard guard.ConstructorGuard
}

// NewMarkAsDeliveredCommand creates a command to confirm delivery of an order.
func NewMarkAsDeliveredCommand(orderID, actor kernel.UUID, proofOfDelivery string) (MarkAsDeliveredCommand, error) {
	deliveredCommand := MarkAsDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveredCommand.setOrderID(orderID),
		deliveredCommand.setActor(actor),
	); err != nil {
		return MarkAsDeliveredCommand{}, err
	}

	deliveredCommand.proofOfDelivery = proofOfDelivery
	return deliveredCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAsDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkAsDeliveredCommandIsNotConstructed)
}

func (c MarkAsDeliveredCommand) OrderID() kernel.UUID    { return c.orderID }
func (c MarkAsDeliveredCommand) Actor() kernel.UUID      { return c.actor }
func (c MarkAsDeliveredCommand) ProofOfDelivery() string { return c.proofOfDelivery }

func (c *MarkAsDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkAsDeliveredCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
