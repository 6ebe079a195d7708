package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// LineItem is one purchased product within an order. Line items are captured
// at checkout and immutable afterwards: there is no mutation operation, and a
// later change to the catalog product must not affect historical orders.
type LineItem struct {
	productID        kernel.UUID
	name             string
	unitPrice        float64
	quantity         int
	sellerID         kernel.UUID
	lineDeliveryDate *time.Time
}

// NewLineItem creates a validated line item snapshot.
func NewLineItem(
	productID kernel.UUID,
	name string,
	unitPrice float64,
	quantity int,
	sellerID kernel.UUID,
	lineDeliveryDate *time.Time,
) (LineItem, error) {
	item := LineItem{lineDeliveryDate: lineDeliveryDate}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
		item.setSellerID(sellerID),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// ProductID returns the opaque catalog product reference.
func (li LineItem) ProductID() kernel.UUID { return li.productID }

// Name returns the product name as it read at checkout time.
func (li LineItem) Name() string { return li.name }

// UnitPrice returns the price per unit captured at checkout.
func (li LineItem) UnitPrice() float64 { return li.unitPrice }

// Quantity returns the purchased unit count.
func (li LineItem) Quantity() int { return li.quantity }

// SellerID returns the opaque seller reference.
func (li LineItem) SellerID() kernel.UUID { return li.sellerID }

// LineDeliveryDate returns the per-line delivery date, when one was promised.
func (li LineItem) LineDeliveryDate() *time.Time { return li.lineDeliveryDate }

// LineTotal returns unitPrice multiplied by quantity.
func (li LineItem) LineTotal() float64 {
	return li.unitPrice * float64(li.quantity)
}

func (li *LineItem) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.productID = id
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setUnitPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%f is negative", price))
	}
	li.unitPrice = price
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.sellerID = id
	return nil
}
