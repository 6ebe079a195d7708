// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate: the orders table holds the aggregate snapshot, order_products
// holds the immutable line items, and order_tracking_events holds the
// append-only ledger.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index that stays authoritative for number
// uniqueness; version backs the optimistic concurrency check.
type OrderDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber           string     `gorm:"type:varchar(16);uniqueIndex;not null"`
	CustomerID            uuid.UUID  `gorm:"type:uuid;index"`
	DriverID              *uuid.UUID `gorm:"type:uuid;index"`
	Status                int        `gorm:"index"`
	Shipping              AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	Billing               AddressDTO `gorm:"embedded;embeddedPrefix:billing_"`
	PaymentMethod         int
	PaymentStatus         int
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
	CustomerRating        *int
	CustomerReviewText    string
	CustomerReviewedAt    *time.Time
	DriverRating          *int
	DriverReviewText      string
	DriverReviewedAt      *time.Time
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	CreatedAt             time.Time
	Version               int `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents a postal address snapshot embedded in the order row
// under a shipping_ or billing_ prefix.
type AddressDTO struct {
	Name       string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// ProductDTO represents one immutable line item row. Position preserves the
// checkout order of the items.
type ProductDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Position     int       `gorm:"not null"`
	ProductID    uuid.UUID `gorm:"type:uuid"`
	Name         string
	UnitPrice    float64
	Quantity     int
	SellerID     uuid.UUID `gorm:"type:uuid;index"`
	DeliveryDate *time.Time
}

// TableName overrides GORM's default naming to use "order_products".
func (ProductDTO) TableName() string {
	return "order_products"
}

// TrackingEventDTO represents one immutable ledger row. Rows are only ever
// inserted; the composite key keeps the per-order sequence unique.
type TrackingEventDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence    int       `gorm:"primaryKey;autoIncrement:false"`
	Status      int
	Timestamp   time.Time
	Location    string
	Description string
	UpdatedBy   *uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides GORM's default naming to use "order_tracking_events".
func (TrackingEventDTO) TableName() string {
	return "order_tracking_events"
}

// fromDomain converts an order aggregate to its row representations. The
// returned tracking rows cover only entries appended since the aggregate was
// loaded, and the order row carries the next version for the guarded update.
func fromDomain(aggregate *order.Order) (OrderDTO, []ProductDTO, []TrackingEventDTO) {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	payment := aggregate.Payment()
	summary := aggregate.Summary()

	dto := OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderNumber:           aggregate.Number().String(),
		CustomerID:            aggregate.CustomerID().Bytes(),
		DriverID:              driverID,
		Status:                int(aggregate.Status()),
		Shipping:              addressFromDomain(aggregate.ShippingAddress()),
		Billing:               addressFromDomain(aggregate.BillingAddress()),
		PaymentMethod:         int(payment.Method()),
		PaymentStatus:         int(payment.Status()),
		TransactionID:         payment.TransactionID(),
		PaidAt:                payment.PaidAt(),
		Subtotal:              summary.Subtotal(),
		ShippingFee:           summary.ShippingFee(),
		MarketplaceFee:        summary.MarketplaceFee(),
		Taxes:                 summary.Taxes(),
		Discount:              summary.Discount(),
		Total:                 summary.Total(),
		ProofOfDelivery:       aggregate.ProofOfDelivery(),
		DeliveryInstructions:  aggregate.DeliveryInstructions(),
		CancelReason:          aggregate.CancelReason(),
		RefundReason:          aggregate.RefundReason(),
		Notes:                 aggregate.Notes(),
		EstimatedDeliveryDate: aggregate.EstimatedDeliveryDate(),
		ActualDeliveryDate:    aggregate.ActualDeliveryDate(),
		CreatedAt:             aggregate.CreatedAt(),
		Version:               aggregate.Version(),
	}

	if review := aggregate.CustomerReview(); review != nil {
		rating := review.Rating()
		reviewedAt := review.ReviewedAt()
		dto.CustomerRating = &rating
		dto.CustomerReviewText = review.Text()
		dto.CustomerReviewedAt = &reviewedAt
	}
	if review := aggregate.DriverReview(); review != nil {
		rating := review.Rating()
		reviewedAt := review.ReviewedAt()
		dto.DriverRating = &rating
		dto.DriverReviewText = review.Text()
		dto.DriverReviewedAt = &reviewedAt
	}

	products := make([]ProductDTO, 0, len(aggregate.Products()))
	for i, item := range aggregate.Products() {
		var deliveryDate *time.Time
		if d := item.LineDeliveryDate(); d != nil {
			copied := *d
			deliveryDate = &copied
		}
		products = append(products, ProductDTO{
			OrderID:      aggregate.ID().Bytes(),
			Position:     i + 1,
			ProductID:    item.ProductID().Bytes(),
			Name:         item.Name(),
			UnitPrice:    item.UnitPrice(),
			Quantity:     item.Quantity(),
			SellerID:     item.SellerID().Bytes(),
			DeliveryDate: deliveryDate,
		})
	}

	unsaved := aggregate.UnsavedTrackingEvents()
	tracking := make([]TrackingEventDTO, 0, len(unsaved))
	for _, event := range unsaved {
		var updatedBy *uuid.UUID
		if actor := event.UpdatedBy(); actor != nil {
			raw := actor.Bytes()
			updatedBy = &raw
		}
		tracking = append(tracking, TrackingEventDTO{
			OrderID:     aggregate.ID().Bytes(),
			Sequence:    event.Sequence(),
			Status:      int(event.Status()),
			Timestamp:   event.Timestamp(),
			Location:    event.Location(),
			Description: event.Description(),
			UpdatedBy:   updatedBy,
		})
	}

	return dto, products, tracking
}

func addressFromDomain(snapshot order.AddressSnapshot) AddressDTO {
	return AddressDTO{
		Name:       snapshot.Name(),
		Street:     snapshot.Street(),
		City:       snapshot.City(),
		State:      snapshot.State(),
		PostalCode: snapshot.PostalCode(),
		Country:    snapshot.Country(),
		Phone:      snapshot.Phone(),
	}
}

// toDomain converts database rows back to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO, productRows []ProductDTO, trackingRows []TrackingEventDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.ParseOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		converted, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &converted
	}

	products := make([]order.LineItem, 0, len(productRows))
	for _, row := range productRows {
		item, itemErr := productToDomain(row)
		if itemErr != nil {
			return nil, itemErr
		}
		products = append(products, item)
	}

	tracking := make([]order.TrackingEvent, 0, len(trackingRows))
	for _, row := range trackingRows {
		event, eventErr := trackingToDomain(row)
		if eventErr != nil {
			return nil, eventErr
		}
		tracking = append(tracking, event)
	}

	shipping, err := addressToDomain(dto.Shipping)
	if err != nil {
		return nil, err
	}
	billing, err := addressToDomain(dto.Billing)
	if err != nil {
		return nil, err
	}

	payment, err := order.RestorePaymentDetails(
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		dto.TransactionID,
		dto.PaidAt,
	)
	if err != nil {
		return nil, err
	}

	summary, err := order.NewSummary(
		dto.Subtotal, dto.ShippingFee, dto.MarketplaceFee, dto.Taxes, dto.Discount, dto.Total,
	)
	if err != nil {
		return nil, err
	}

	params := order.RestoreOrderParams{
		ID:                    id,
		Number:                number,
		CustomerID:            customerID,
		DriverID:              driverID,
		Products:              products,
		ShippingAddress:       shipping,
		BillingAddress:        billing,
		Payment:               payment,
		Summary:               summary,
		Status:                order.Status(dto.Status),
		Tracking:              tracking,
		ProofOfDelivery:       dto.ProofOfDelivery,
		DeliveryInstructions:  dto.DeliveryInstructions,
		CancelReason:          dto.CancelReason,
		RefundReason:          dto.RefundReason,
		Notes:                 dto.Notes,
		EstimatedDeliveryDate: dto.EstimatedDeliveryDate,
		ActualDeliveryDate:    dto.ActualDeliveryDate,
		CreatedAt:             dto.CreatedAt,
		Version:               dto.Version,
	}

	if dto.CustomerRating != nil && dto.CustomerReviewedAt != nil {
		review, reviewErr := order.NewReview(*dto.CustomerRating, dto.CustomerReviewText, *dto.CustomerReviewedAt)
		if reviewErr != nil {
			return nil, reviewErr
		}
		params.CustomerReview = &review
	}
	if dto.DriverRating != nil && dto.DriverReviewedAt != nil {
		review, reviewErr := order.NewReview(*dto.DriverRating, dto.DriverReviewText, *dto.DriverReviewedAt)
		if reviewErr != nil {
			return nil, reviewErr
		}
		params.DriverReview = &review
	}

	return order.RestoreOrder(params)
}

func productToDomain(row ProductDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(row.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	sellerID, err := kernel.UUIDFromBytes(row.SellerID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, row.Name, row.UnitPrice, row.Quantity, sellerID, row.DeliveryDate)
}

func trackingToDomain(row TrackingEventDTO) (order.TrackingEvent, error) {
	var updatedBy *kernel.UUID
	if row.UpdatedBy != nil {
		actor, err := kernel.UUIDFromBytes((*row.UpdatedBy)[:])
		if err != nil {
			return order.TrackingEvent{}, err
		}
		updatedBy = &actor
	}

	return order.RestoreTrackingEvent(
		row.Sequence,
		order.Status(row.Status),
		row.Timestamp,
		row.Location,
		row.Description,
		updatedBy,
	), nil
}

func addressToDomain(dto AddressDTO) (order.AddressSnapshot, error) {
	return order.NewAddressSnapshot(
		dto.Name, dto.Street, dto.City, dto.State, dto.PostalCode, dto.Country, dto.Phone,
	)
}
