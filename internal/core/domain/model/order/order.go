package order

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrProductsAreRequired is returned when an order is created without line items.
	ErrProductsAreRequired = errors.New("order requires at least one line item")
)

// Details carries the optional free-form fields captured at order creation.
type Details struct {
	DeliveryInstructions  string
	Notes                 string
	EstimatedDeliveryDate *time.Time
}

// Order is the aggregate root for the order lifecycle. It progresses through a
// finite set of statuses, accumulates an append-only tracking ledger, gates
// post-delivery reviews, and carries snapshots of everything the marketplace
// captured at checkout: line items, addresses, payment, and the money summary.
//
// Order follows these invariants:
//   - The order number is globally unique and immutable once assigned
//   - Line items and address snapshots never change after creation
//   - Status transitions follow the state machine in Status
//   - Every transition appends exactly one tracking entry
//   - The summary total always equals subtotal + fees + taxes - discount
//   - Reviews are write-once and only possible after delivery
//   - Orders are never hard-deleted; Cancelled and Refunded are kept for audit
//
// All mutation goes through the methods below; the struct uses private fields
// to keep the invariants enforceable.
type Order struct {
	id         kernel.UUID
	number     OrderNumber
	customerID kernel.UUID
	driverID   *kernel.UUID

	products        []LineItem
	shippingAddress AddressSnapshot
	billingAddress  AddressSnapshot
	payment         PaymentDetails
	summary         Summary

	status   Status
	tracking []TrackingEvent

	proofOfDelivery      string
	deliveryInstructions string
	cancelReason         string
	refundReason         string
	notes                string

	customerReview *Review
	driverReview   *Review

	estimatedDeliveryDate *time.Time
	actualDeliveryDate    *time.Time

	createdAt time.Time
	version   int

	// persistedTracking counts ledger entries already stored; entries beyond
	// it are pending insertion.
	persistedTracking int

	isConstructed bool
}

// NewOrder creates a new order in Pending status with the initial tracking
// entry. The checkout collaborator supplies validated line items, address
// snapshots, the initial payment snapshot, and the money summary; NewOrder
// re-checks every invariant before the aggregate exists.
func NewOrder(
	id kernel.UUID,
	number OrderNumber,
	customerID kernel.UUID,
	products []LineItem,
	shippingAddress AddressSnapshot,
	billingAddress AddressSnapshot,
	payment PaymentDetails,
	summary Summary,
	details Details,
) (*Order, error) {
	o := &Order{
		status:                Pending,
		payment:               payment,
		summary:               summary,
		deliveryInstructions:  details.DeliveryInstructions,
		notes:                 details.Notes,
		estimatedDeliveryDate: details.EstimatedDeliveryDate,
		createdAt:             time.Now().UTC(),
		version:               1,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setProducts(products),
		o.setAddresses(shippingAddress, billingAddress),
	); err != nil {
		return nil, err
	}

	if err := o.validateSummary(); err != nil {
		return nil, err
	}

	o.appendTracking(Pending, "Order placed", "", &customerID)
	return o, nil
}

// RestoreOrderParams carries the persisted state needed to reconstruct an
// order aggregate. Used only by repository adapters.
type RestoreOrderParams struct {
	ID                    kernel.UUID
	Number                OrderNumber
	CustomerID            kernel.UUID
	DriverID              *kernel.UUID
	Products              []LineItem
	ShippingAddress       AddressSnapshot
	BillingAddress        AddressSnapshot
	Payment               PaymentDetails
	Summary               Summary
	Status                Status
	Tracking              []TrackingEvent
	ProofOfDelivery       string
	DeliveryInstructions  string
	CancelReason          string
	RefundReason          string
	Notes                 string
	CustomerReview        *Review
	DriverReview          *Review
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	CreatedAt             time.Time
	Version               int
}

// RestoreOrder reconstructs an order from persistence, re-validating the
// identity fields and status so corrupt rows surface as errors instead of
// invalid aggregates.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.Number.Validate(),
		params.CustomerID.Validate(),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if params.Version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause(
			"order", fmt.Errorf("%d is not a positive version", params.Version))
	}

	return &Order{
		id:                    params.ID,
		number:                params.Number,
		customerID:            params.CustomerID,
		driverID:              params.DriverID,
		products:              params.Products,
		shippingAddress:       params.ShippingAddress,
		billingAddress:        params.BillingAddress,
		payment:               params.Payment,
		summary:               params.Summary,
		status:                params.Status,
		tracking:              params.Tracking,
		proofOfDelivery:       params.ProofOfDelivery,
		deliveryInstructions:  params.DeliveryInstructions,
		cancelReason:          params.CancelReason,
		refundReason:          params.RefundReason,
		notes:                 params.Notes,
		customerReview:        params.CustomerReview,
		driverReview:          params.DriverReview,
		estimatedDeliveryDate: params.EstimatedDeliveryDate,
		actualDeliveryDate:    params.ActualDeliveryDate,
		createdAt:             params.CreatedAt,
		version:               params.Version,
		persistedTracking:     len(params.Tracking),
		isConstructed:         true,
	}, nil
}

// Validate ensures the Order instance was constructed through NewOrder or
// RestoreOrder, preventing zero-value aggregates from reaching persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                   { return o.id }
func (o *Order) Number() OrderNumber               { return o.number }
func (o *Order) CustomerID() kernel.UUID           { return o.customerID }
func (o *Order) DriverID() *kernel.UUID            { return o.driverID }
func (o *Order) ShippingAddress() AddressSnapshot  { return o.shippingAddress }
func (o *Order) BillingAddress() AddressSnapshot   { return o.billingAddress }
func (o *Order) Payment() PaymentDetails           { return o.payment }
func (o *Order) Summary() Summary                  { return o.summary }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) ProofOfDelivery() string           { return o.proofOfDelivery }
func (o *Order) DeliveryInstructions() string      { return o.deliveryInstructions }
func (o *Order) CancelReason() string              { return o.cancelReason }
func (o *Order) RefundReason() string              { return o.refundReason }
func (o *Order) Notes() string                     { return o.notes }
func (o *Order) CustomerReview() *Review           { return o.customerReview }
func (o *Order) DriverReview() *Review             { return o.driverReview }
func (o *Order) EstimatedDeliveryDate() *time.Time { return o.estimatedDeliveryDate }
func (o *Order) ActualDeliveryDate() *time.Time    { return o.actualDeliveryDate }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }
func (o *Order) Version() int                      { return o.version }

// Products returns a copy of the immutable line items.
func (o *Order) Products() []LineItem {
	return slices.Clone(o.products)
}

// History returns the tracking ledger sorted newest-first. This is a
// presentation order; storage order stays insertion order.
func (o *Order) History() []TrackingEvent {
	history := slices.Clone(o.tracking)
	slices.SortStableFunc(history, func(a, b TrackingEvent) int {
		return b.sequence - a.sequence
	})
	return history
}

// UnsavedTrackingEvents returns ledger entries appended since the aggregate
// was loaded. Repository adapters insert exactly these rows.
func (o *Order) UnsavedTrackingEvents() []TrackingEvent {
	return slices.Clone(o.tracking[o.persistedTracking:])
}

// CalculateTotal recomputes the order total from line items and summary fee
// fields. Pure: it does not mutate stored state.
func (o *Order) CalculateTotal() float64 {
	var subtotal float64
	for _, item := range o.products {
		subtotal += item.LineTotal()
	}
	return subtotal + o.summary.ShippingFee() + o.summary.MarketplaceFee() + o.summary.Taxes() - o.summary.Discount()
}

// UpdateStatus moves the order to the next status through the general
// transition table and appends a tracking entry. Reaching Delivered also sets
// the actual delivery date. Cancelled and Refunded are not reachable here;
// they have dedicated operations carrying a reason.
func (o *Order) UpdateStatus(next Status, actor kernel.UUID, location, description string) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		now := time.Now().UTC()
		o.actualDeliveryDate = &now
	}
	if description == "" {
		description = fmt.Sprintf("Status changed to %s", newStatus)
	}
	o.appendTracking(newStatus, description, location, &actor)
	return nil
}

// AssignDriver assigns or reassigns the delivery driver. Not allowed once the
// order is delivered, cancelled, or refunded.
func (o *Order) AssignDriver(driverID, actor kernel.UUID) error {
	if err := errors.Join(driverID.Validate(), actor.Validate()); err != nil {
		return err
	}
	if err := o.status.ValidateAssignDriver(); err != nil {
		return err
	}

	o.driverID = &driverID
	o.appendTracking(o.status, "Driver assigned", "", &actor)
	return nil
}

// MarkAsDelivered completes the delivery: sets Delivered, records the actual
// delivery date exactly once, and stores the optional proof of delivery.
func (o *Order) MarkAsDelivered(proofOfDelivery string, actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now().UTC()
	o.actualDeliveryDate = &now
	if proofOfDelivery != "" {
		o.proofOfDelivery = proofOfDelivery
	}
	o.appendTracking(newStatus, "Order delivered", "", &actor)
	return nil
}

// Cancel moves the order to Cancelled with the given reason. Fails with
// ErrInvalidTransition once the order is delivered, and leaves state unchanged.
func (o *Order) Cancel(reason string, actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("cancelReason")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	o.appendTracking(newStatus, fmt.Sprintf("Order cancelled: %s", reason), "", &actor)
	return nil
}

// InitiateRefund moves a cancelled or delivered order to Refunded, records the
// reason, and flips the payment snapshot to refunded. The refund itself is
// executed by the payment collaborator.
func (o *Order) InitiateRefund(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("refundReason")
	}

	newStatus, err := o.status.Refund()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.refundReason = reason
	o.payment = o.payment.markRefunded()
	o.appendTracking(newStatus, fmt.Sprintf("Refund initiated: %s", reason), "", nil)
	return nil
}

// ConfirmPayment records a settled payment pushed by the payment collaborator.
// Only orders that have not yet shipped accept a payment confirmation, and the
// payment snapshot moves only through this flow or InitiateRefund.
func (o *Order) ConfirmPayment(transactionID string, paidAt time.Time) error {
	if o.status != Pending && o.status != Processing {
		return fmt.Errorf("%w: can not confirm payment in status %s", ErrInvalidTransition, o.status)
	}

	payment, err := o.payment.markPaid(transactionID, paidAt)
	if err != nil {
		return err
	}
	o.payment = payment
	return nil
}

// AddCustomerReview records the customer's write-once post-delivery review.
// Rating and text are validated before any mutation occurs.
func (o *Order) AddCustomerReview(rating int, text string) error {
	review, err := NewReview(rating, text, time.Now().UTC())
	if err != nil {
		return err
	}
	if o.status != Delivered {
		return fmt.Errorf("%w: order is %s", ErrOrderNotDelivered, o.status)
	}
	if o.customerReview != nil {
		return fmt.Errorf("%w: customer review exists", ErrAlreadyReviewed)
	}

	o.customerReview = &review
	return nil
}

// AddDriverReview records the write-once post-delivery review for the driver.
// Additionally fails when the order never had a driver assigned.
func (o *Order) AddDriverReview(rating int, text string) error {
	review, err := NewReview(rating, text, time.Now().UTC())
	if err != nil {
		return err
	}
	if o.status != Delivered {
		return fmt.Errorf("%w: order is %s", ErrOrderNotDelivered, o.status)
	}
	if o.driverID == nil {
		return ErrNoDriverAssigned
	}
	if o.driverReview != nil {
		return fmt.Errorf("%w: driver review exists", ErrAlreadyReviewed)
	}

	o.driverReview = &review
	return nil
}

func (o *Order) appendTracking(status Status, description, location string, actor *kernel.UUID) {
	o.tracking = append(o.tracking, TrackingEvent{
		sequence:    len(o.tracking) + 1,
		status:      status,
		timestamp:   time.Now().UTC(),
		location:    location,
		description: description,
		updatedBy:   actor,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setProducts(products []LineItem) error {
	if len(products) == 0 {
		return ErrProductsAreRequired
	}
	o.products = slices.Clone(products)
	return nil
}

func (o *Order) setAddresses(shipping, billing AddressSnapshot) error {
	if err := shipping.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shippingAddress", err)
	}
	if err := billing.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("billingAddress", err)
	}
	o.shippingAddress = shipping
	o.billingAddress = billing
	return nil
}

// validateSummary checks the summary invariant against the actual line items:
// the stored subtotal must match the line totals and the stored total must
// match CalculateTotal.
func (o *Order) validateSummary() error {
	var subtotal float64
	for _, item := range o.products {
		subtotal += item.LineTotal()
	}
	if math.Abs(subtotal-o.summary.Subtotal()) > moneyEpsilon {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderSummary",
			fmt.Errorf("subtotal %.2f does not match line items total %.2f", o.summary.Subtotal(), subtotal),
		)
	}
	if math.Abs(o.summary.Total()-o.CalculateTotal()) > moneyEpsilon {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderSummary",
			fmt.Errorf("total %.2f does not match computed total %.2f", o.summary.Total(), o.CalculateTotal()),
		)
	}
	return nil
}
