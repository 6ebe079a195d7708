package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery retrieves the append-only tracking ledger of one
// order, newest entry first.
type GetTrackingHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a query for an order's tracking ledger.
func NewGetTrackingHistoryQuery(orderID kernel.UUID) (GetTrackingHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTrackingHistoryQuery{}, err
	}

	return GetTrackingHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose ledger is requested.
func (q GetTrackingHistoryQuery) OrderID() kernel.UUID { return q.orderID }

// GetTrackingHistoryQueryResponse is one ledger entry.
type GetTrackingHistoryQueryResponse struct {
	Sequence    int
	Status      string
	Timestamp   time.Time
	Location    string
	Description string
	UpdatedBy   *kernel.UUID
}
