package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("line items")
)

// Pricing holds the checkout charges that accompany the line items.
// The handler derives the subtotal and grand total from these and the items.
type Pricing struct {
	ShippingFee    float64
	MarketplaceFee float64
	Taxes          float64
	Discount       float64
}

// CreateOrderCommand represents a checkout request: the customer, the line
// items, both addresses, the payment method, and the pricing breakdown.
// The order number is not part of the command; it is generated inside the
// handler's transaction.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	products        []order.LineItem
	shippingAddress order.AddressSnapshot
	billingAddress  order.AddressSnapshot
	paymentMethod   order.PaymentMethod
	pricing         Pricing
	details         order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Line items and addresses arrive as already-validated value objects; the
// command re-checks only what the handler relies on.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	products []order.LineItem,
	shippingAddress order.AddressSnapshot,
	billingAddress order.AddressSnapshot,
	paymentMethod order.PaymentMethod,
	pricing Pricing,
	details order.Details,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setProducts(products),
		orderCommand.setAddresses(shippingAddress, billingAddress),
		orderCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.pricing = pricing
	orderCommand.details = details
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

func (c CreateOrderCommand) Products() []order.LineItem {
	out := make([]order.LineItem, len(c.products))
	copy(out, c.products)
	return out
}

func (c CreateOrderCommand) ShippingAddress() order.AddressSnapshot { return c.shippingAddress }
func (c CreateOrderCommand) BillingAddress() order.AddressSnapshot  { return c.billingAddress }
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod     { return c.paymentMethod }
func (c CreateOrderCommand) Pricing() Pricing                       { return c.pricing }
func (c CreateOrderCommand) Details() order.Details                 { return c.details }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setProducts(products []order.LineItem) error {
	if len(products) == 0 {
		return ErrLineItemsAreRequired
	}

	c.products = make([]order.LineItem, len(products))
	copy(c.products, products)
	return nil
}

func (c *CreateOrderCommand) setAddresses(shipping, billing order.AddressSnapshot) error {
	if err := shipping.Validate(); err != nil {
		return err
	}
	if err := billing.Validate(); err != nil {
		return err
	}

	c.shippingAddress = shipping
	c.billingAddress = billing
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
