package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrTransactionIDIsRequired = errs.NewValueIsRequiredError("transaction id")
)

// ConfirmPaymentCommand represents a settlement callback from the payment
// provider: the order's payment went through under the given transaction id.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	transactionID string
	paidAt        time.Time

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to record a settled payment.
func NewConfirmPaymentCommand(
	orderID kernel.UUID,
	transactionID string,
	paidAt time.Time,
) (ConfirmPaymentCommand, error) {
	paymentCommand := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setTransactionID(transactionID),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	paymentCommand.paidAt = paidAt.UTC()
	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) OrderID() kernel.UUID  { return c.orderID }
func (c ConfirmPaymentCommand) TransactionID() string { return c.transactionID }
func (c ConfirmPaymentCommand) PaidAt() time.Time     { return c.paidAt }

func (c *ConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return ErrTransactionIDIsRequired
	}

	c.transactionID = transactionID
	return nil
}
