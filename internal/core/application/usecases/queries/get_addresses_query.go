package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetAddressesQueryIsNotConstructed = errors.New(
	"GetAddressesQuery must be created via NewGetAddressesQuery constructor",
)

// GetAddressesQuery retrieves a customer's address book, default entry first.
type GetAddressesQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAddressesQuery creates a query for the given customer's address book.
func NewGetAddressesQuery(ownerID kernel.UUID) (GetAddressesQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetAddressesQuery{}, err
	}

	return GetAddressesQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressesQueryIsNotConstructed)
}

// OwnerID returns the customer whose address book is requested.
func (q GetAddressesQuery) OwnerID() kernel.UUID { return q.ownerID }

// GetAddressesQueryResponse is one address book entry.
type GetAddressesQueryResponse struct {
	ID        kernel.UUID
	Label     string
	Address   AddressView
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
