package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrInitiateRefundCommandIsNotConstructed = errors.New(
		"InitiateRefundCommand must be created via NewInitiateRefundCommand constructor",
	)
	ErrRefundReasonIsRequired = errs.NewValueIsRequiredError("refund reason")
)

// InitiateRefundCommand represents a request to refund a cancelled or
// delivered order.
type InitiateRefundCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewInitiateRefundCommand creates a command to refund an order.
func NewInitiateRefundCommand(orderID kernel.UUID, reason string) (InitiateRefundCommand, error) {
	refundCommand := InitiateRefundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		refundCommand.setOrderID(orderID),
		refundCommand.setReason(reason),
	); err != nil {
		return InitiateRefundCommand{}, err
	}

	return refundCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiateRefundCommand) Validate() error {
	return c.guard.Validate(ErrInitiateRefundCommandIsNotConstructed)
}

func (c InitiateRefundCommand) OrderID() kernel.UUID { return c.orderID }
func (c InitiateRefundCommand) Reason() string       { return c.reason }

func (c *InitiateRefundCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *InitiateRefundCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRefundReasonIsRequired
	}

	c.reason = reason
	return nil
}
