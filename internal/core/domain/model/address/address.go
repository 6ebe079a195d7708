package address

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for address operations.
var (
	// ErrLabelIsRequired is returned when attempting to create an address without a label.
	ErrLabelIsRequired = errs.NewValueIsRequiredError("label")
	// ErrAddressIsNotConstructed is returned when using an improperly initialized Address.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")
)

// Address is a saved entry in a customer's address book.
//
// Addresses are reusable: checkout copies the fields into an immutable
// AddressSnapshot on the order, so later edits to the book never rewrite
// history. At most one address per owner is the default; the repository
// enforces that when an address is saved with IsDefault set.
type Address struct {
	// id uniquely identifies the address book entry
	id kernel.UUID
	// ownerID is the customer who owns this entry
	ownerID kernel.UUID
	// label is the customer-facing name of the entry ("Home", "Office")
	label string
	// snapshot holds the postal fields shared with orders
	snapshot order.AddressSnapshot
	// isDefault marks the entry preselected at checkout
	isDefault bool
	// createdAt is when the entry was first saved
	createdAt time.Time
	// updatedAt is when the entry was last edited
	updatedAt time.Time
	// guard ensures the address was properly constructed
	guard guard.ConstructorGuard
}

// NewAddress creates a new address book entry for the given owner.
//
// The postal fields are validated through the snapshot value object, so an
// entry that cannot be copied onto an order cannot be saved either.
func NewAddress(
	id kernel.UUID,
	ownerID kernel.UUID,
	label string,
	snapshot order.AddressSnapshot,
	isDefault bool,
) (*Address, error) {
	address := &Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setID(id),
		address.setOwnerID(ownerID),
		address.setLabel(label),
		address.setSnapshot(snapshot),
	); err != nil {
		return nil, err
	}

	address.isDefault = isDefault
	now := time.Now().UTC()
	address.createdAt = now
	address.updatedAt = now
	return address, nil
}

// RestoreAddress reconstructs an address book entry from persistent storage.
func RestoreAddress(
	id kernel.UUID,
	ownerID kernel.UUID,
	label string,
	snapshot order.AddressSnapshot,
	isDefault bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Address, error) {
	address := &Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setID(id),
		address.setOwnerID(ownerID),
		address.setLabel(label),
		address.setSnapshot(snapshot),
	); err != nil {
		return nil, err
	}

	address.isDefault = isDefault
	address.createdAt = createdAt
	address.updatedAt = updatedAt
	return address, nil
}

// IsEqual compares two addresses by their unique identifiers.
func (a *Address) IsEqual(other *Address) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// Validate checks that the Address was created through a constructor.
// The zero value fails this check.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) ID() kernel.UUID                 { return a.id }
func (a *Address) OwnerID() kernel.UUID            { return a.ownerID }
func (a *Address) Label() string                   { return a.label }
func (a *Address) Snapshot() order.AddressSnapshot { return a.snapshot }
func (a *Address) IsDefault() bool                 { return a.isDefault }
func (a *Address) CreatedAt() time.Time            { return a.createdAt }
func (a *Address) UpdatedAt() time.Time            { return a.updatedAt }

// Update replaces the label and postal fields of the entry.
// Orders created from the previous revision keep their own snapshot.
func (a *Address) Update(label string, snapshot order.AddressSnapshot) error {
	if err := errors.Join(
		a.setLabel(label),
		a.setSnapshot(snapshot),
	); err != nil {
		return err
	}

	a.updatedAt = time.Now().UTC()
	return nil
}

// MakeDefault marks the entry as the checkout default. The repository clears
// the flag on the owner's other entries in the same transaction.
func (a *Address) MakeDefault() {
	a.isDefault = true
	a.updatedAt = time.Now().UTC()
}

// ClearDefault removes the default flag, leaving the owner without a
// preselected address.
func (a *Address) ClearDefault() {
	a.isDefault = false
	a.updatedAt = time.Now().UTC()
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

func (a *Address) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}

	a.ownerID = ownerID
	return nil
}

func (a *Address) setLabel(label string) error {
	if label == "" {
		return ErrLabelIsRequired
	}

	a.label = label
	return nil
}

func (a *Address) setSnapshot(snapshot order.AddressSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	a.snapshot = snapshot
	return nil
}
