package ports

import (
	"context"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for the customer
// address book. Saving an entry with the default flag set clears the flag
// on the owner's other entries within the same transaction.
type AddressRepository interface {
	// Add persists a new address book entry.
	Add(ctx context.Context, aggregate *address.Address) error

	// Update persists changes to an existing entry.
	Update(ctx context.Context, aggregate *address.Address) error

	// Get retrieves an entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// GetAllByOwner retrieves every entry belonging to the given customer,
	// default entry first.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*address.Address, error)

	// Delete removes an entry by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
