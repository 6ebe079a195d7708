package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items, either by id or by
// the customer-facing order number.
type GetOrderQuery struct {
	orderID *kernel.UUID
	number  *order.OrderNumber

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query that looks an order up by id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewGetOrderQueryByNumber creates a query that looks an order up by its
// order number.
func NewGetOrderQueryByNumber(number order.OrderNumber) (GetOrderQuery, error) {
	if err := number.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		number: &number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the id filter, or nil for number lookups.
func (q GetOrderQuery) OrderID() *kernel.UUID { return q.orderID }

// Number returns the order number filter, or nil for id lookups.
func (q GetOrderQuery) Number() *order.OrderNumber { return q.number }

// ProductView is one line item in an order read model.
type ProductView struct {
	ProductID    kernel.UUID
	Name         string
	UnitPrice    float64
	Quantity     int
	SellerID     kernel.UUID
	DeliveryDate *time.Time
}

// AddressView is a postal address in an order read model.
type AddressView struct {
	Name       string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// ReviewView is a stored review in an order read model.
type ReviewView struct {
	Rating     int
	Text       string
	ReviewedAt time.Time
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID                    kernel.UUID
	OrderNumber           string
	CustomerID            kernel.UUID
	DriverID              *kernel.UUID
	Status                string
	Products              []ProductView
	ShippingAddress       AddressView
	BillingAddress        AddressView
	PaymentMethod         string
	PaymentStatus         string
	TransactionID         string
	PaidAt                *time.Time
	Subtotal              float64
	ShippingFee           float64
	MarketplaceFee        float64
	Taxes                 float64
	Discount              float64
	Total                 float64
	ProofOfDelivery       string
	DeliveryInstructions  string
	CancelReason          string
	RefundReason          string
	Notes                 string
	CustomerReview        *ReviewView
	DriverReview          *ReviewView
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	CreatedAt             time.Time
	Version               int
}
