package queries

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// orderRow is the raw SQL shape of one orders row. Shared by every query
// handler that projects full orders.
type orderRow struct {
	ID                    uuid.UUID  `gorm:"column:id"`
	OrderNumber           string     `gorm:"column:order_number"`
	CustomerID            uuid.UUID  `gorm:"column:customer_id"`
	DriverID              *uuid.UUID `gorm:"column:driver_id"`
	Status                int        `gorm:"column:status"`
	ShippingName          string     `gorm:"column:shipping_name"`
	ShippingStreet        string     `gorm:"column:shipping_street"`
	ShippingCity          string     `gorm:"column:shipping_city"`
	ShippingState         string     `gorm:"column:shipping_state"`
	ShippingPostalCode    string     `gorm:"column:shipping_postal_code"`
	ShippingCountry       string     `gorm:"column:shipping_country"`
	ShippingPhone         string     `gorm:"column:shipping_phone"`
	BillingName           string     `gorm:"column:billing_name"`
	BillingStreet         string     `gorm:"column:billing_street"`
	BillingCity           string     `gorm:"column:billing_city"`
	BillingState          string     `gorm:"column:billing_state"`
	BillingPostalCode     string     `gorm:"column:billing_postal_code"`
	BillingCountry        string     `gorm:"column:billing_country"`
	BillingPhone          string     `gorm:"column:billing_phone"`
	PaymentMethod         int        `gorm:"column:payment_method"`
	PaymentStatus         int        `gorm:"column:payment_status"`
	TransactionID         string     `gorm:"column:transaction_id"`
	PaidAt                *time.Time `gorm:"column:paid_at"`
	Subtotal              float64    `gorm:"column:subtotal"`
	ShippingFee           float64    `gorm:"column:shipping_fee"`
	MarketplaceFee        float64    `gorm:"column:marketplace_fee"`
	Taxes                 float64    `gorm:"column:taxes"`
	Discount              float64    `gorm:"column:discount"`
	Total                 float64    `gorm:"column:total"`
	ProofOfDelivery       string     `gorm:"column:proof_of_delivery"`
	DeliveryInstructions  string     `gorm:"column:delivery_instructions"`
	CancelReason          string     `gorm:"column:cancel_reason"`
	RefundReason          string     `gorm:"column:refund_reason"`
	Notes                 string     `gorm:"column:notes"`
	CustomerRating        *int       `gorm:"column:customer_rating"`
	CustomerReviewText    string     `gorm:"column:customer_review_text"`
	CustomerReviewedAt    *time.Time `gorm:"column:customer_reviewed_at"`
	DriverRating          *int       `gorm:"column:driver_rating"`
	DriverReviewText      string     `gorm:"column:driver_review_text"`
	DriverReviewedAt      *time.Time `gorm:"column:driver_reviewed_at"`
	EstimatedDeliveryDate *time.Time `gorm:"column:estimated_delivery_date"`
	ActualDeliveryDate    *time.Time `gorm:"column:actual_delivery_date"`
	CreatedAt             time.Time  `gorm:"column:created_at"`
	Version               int        `gorm:"column:version"`
}

// productRow is the raw SQL shape of one order_products row.
type productRow struct {
	OrderID      uuid.UUID  `gorm:"column:order_id"`
	ProductID    uuid.UUID  `gorm:"column:product_id"`
	Name         string     `gorm:"column:name"`
	UnitPrice    float64    `gorm:"column:unit_price"`
	Quantity     int        `gorm:"column:quantity"`
	SellerID     uuid.UUID  `gorm:"column:seller_id"`
	DeliveryDate *time.Time `gorm:"column:delivery_date"`
}

// orderColumns is the projection shared by the order query handlers.
const orderColumns = `
	id, order_number, customer_id, driver_id, status,
	shipping_name, shipping_street, shipping_city, shipping_state,
	shipping_postal_code, shipping_country, shipping_phone,
	billing_name, billing_street, billing_city, billing_state,
	billing_postal_code, billing_country, billing_phone,
	payment_method, payment_status, transaction_id, paid_at,
	subtotal, shipping_fee, marketplace_fee, taxes, discount, total,
	proof_of_delivery, delivery_instructions, cancel_reason, refund_reason, notes,
	customer_rating, customer_review_text, customer_reviewed_at,
	driver_rating, driver_review_text, driver_reviewed_at,
	estimated_delivery_date, actual_delivery_date, created_at, version`

func (r orderRow) toResponse(products []ProductView) (GetOrderQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	var driverID *kernel.UUID
	if r.DriverID != nil {
		converted, convErr := kernel.UUIDFromBytes(r.DriverID[:])
		if convErr != nil {
			return GetOrderQueryResponse{}, convErr
		}
		driverID = &converted
	}

	response := GetOrderQueryResponse{
		ID:          id,
		OrderNumber: r.OrderNumber,
		CustomerID:  customerID,
		DriverID:    driverID,
		Status:      order.Status(r.Status).String(),
		Products:    products,
		ShippingAddress: AddressView{
			Name: r.ShippingName, Street: r.ShippingStreet, City: r.ShippingCity,
			State: r.ShippingState, PostalCode: r.ShippingPostalCode,
			Country: r.ShippingCountry, Phone: r.ShippingPhone,
		},
		BillingAddress: AddressView{
			Name: r.BillingName, Street: r.BillingStreet, City: r.BillingCity,
			State: r.BillingState, PostalCode: r.BillingPostalCode,
			Country: r.BillingCountry, Phone: r.BillingPhone,
		},
		PaymentMethod:         order.PaymentMethod(r.PaymentMethod).String(),
		PaymentStatus:         order.PaymentStatus(r.PaymentStatus).String(),
		TransactionID:         r.TransactionID,
		PaidAt:                r.PaidAt,
		Subtotal:              r.Subtotal,
		ShippingFee:           r.ShippingFee,
		MarketplaceFee:        r.MarketplaceFee,
		Taxes:                 r.Taxes,
		Discount:              r.Discount,
		Total:                 r.Total,
		ProofOfDelivery:       r.ProofOfDelivery,
		DeliveryInstructions:  r.DeliveryInstructions,
		CancelReason:          r.CancelReason,
		RefundReason:          r.RefundReason,
		Notes:                 r.Notes,
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
		ActualDeliveryDate:    r.ActualDeliveryDate,
		CreatedAt:             r.CreatedAt,
		Version:               r.Version,
	}

	if r.CustomerRating != nil && r.CustomerReviewedAt != nil {
		response.CustomerReview = &ReviewView{
			Rating:     *r.CustomerRating,
			Text:       r.CustomerReviewText,
			ReviewedAt: *r.CustomerReviewedAt,
		}
	}
	if r.DriverRating != nil && r.DriverReviewedAt != nil {
		response.DriverReview = &ReviewView{
			Rating:     *r.DriverRating,
			Text:       r.DriverReviewText,
			ReviewedAt: *r.DriverReviewedAt,
		}
	}

	return response, nil
}

func (r productRow) toView() (ProductView, error) {
	productID, err := kernel.UUIDFromBytes(r.ProductID[:])
	if err != nil {
		return ProductView{}, err
	}

	sellerID, err := kernel.UUIDFromBytes(r.SellerID[:])
	if err != nil {
		return ProductView{}, err
	}

	return ProductView{
		ProductID:    productID,
		Name:         r.Name,
		UnitPrice:    r.UnitPrice,
		Quantity:     r.Quantity,
		SellerID:     sellerID,
		DeliveryDate: r.DeliveryDate,
	}, nil
}
