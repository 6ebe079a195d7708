package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// maxNumberRetries bounds how many times order creation retries after losing
// a unique-index race on the order number. The sequencer runs inside the
// transaction, so each retry draws a fresh value.
const maxNumberRetries = 3

// CreateOrderCommandHandler handles the business logic for placing orders.
// It generates the date-scoped order number, builds the aggregate in Pending
// status, and persists it atomically with its first tracking entry.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a CheckoutUoWFactory so the number sequencer and the order insert
// share one transaction.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order creation command.
// A duplicate order number rolls the whole attempt back, including the
// sequence draw, and the handler retries with the next value.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < maxNumberRetries; attempt++ {
		err := h.placeOrder(ctx, cmd)
		if err == nil {
			return nil
		}
		if !errors.Is(err, order.ErrNumberGenerationConflict) {
			return err
		}
		lastErr = err
	}

	return lastErr
}

func (h *CreateOrderCommandHandler) placeOrder(ctx context.Context, cmd CreateOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	placedAt := h.now().UTC()
	sequence, err := uow.OrderNumberSequencer().Next(ctx, placedAt)
	if err != nil {
		return err
	}

	number, err := order.NewOrderNumber(placedAt, sequence)
	if err != nil {
		return err
	}

	aggregate, err := h.buildOrder(cmd, number)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateOrderCommandHandler) buildOrder(
	cmd CreateOrderCommand,
	number order.OrderNumber,
) (*order.Order, error) {
	products := cmd.Products()

	subtotal := 0.0
	for _, item := range products {
		subtotal += item.LineTotal()
	}

	pricing := cmd.Pricing()
	total := subtotal + pricing.ShippingFee + pricing.MarketplaceFee + pricing.Taxes - pricing.Discount
	summary, err := order.NewSummary(
		subtotal, pricing.ShippingFee, pricing.MarketplaceFee, pricing.Taxes, pricing.Discount, total,
	)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPaymentDetails(cmd.PaymentMethod(), order.PaymentStatusPending)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.CustomerID(),
		products,
		cmd.ShippingAddress(),
		cmd.BillingAddress(),
		payment,
		summary,
		cmd.Details(),
	)
}
