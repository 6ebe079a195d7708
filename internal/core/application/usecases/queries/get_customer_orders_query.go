package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves one customer's orders, newest first,
// optionally filtered to a single status.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	status     *int

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
// Pass a nil status for all statuses.
func NewGetCustomerOrdersQuery(customerID kernel.UUID, status *int) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID { return q.customerID }

// Status returns the optional status filter.
func (q GetCustomerOrdersQuery) Status() *int { return q.status }
