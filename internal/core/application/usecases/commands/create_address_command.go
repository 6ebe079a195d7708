package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateAddressCommandIsNotConstructed = errors.New(
		"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
	)
	ErrAddressLabelIsRequired = errs.NewValueIsRequiredError("label")
)

// CreateAddressCommand represents a request to save a new address book entry
// for a customer.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	ownerID   kernel.UUID
	label     string
	snapshot  order.AddressSnapshot
	isDefault bool

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand creates a command to save an address book entry.
func NewCreateAddressCommand(
	addressID kernel.UUID,
	ownerID kernel.UUID,
	label string,
	snapshot order.AddressSnapshot,
	isDefault bool,
) (CreateAddressCommand, error) {
	addressCommand := CreateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addressCommand.setAddressID(addressID),
		addressCommand.setOwnerID(ownerID),
		addressCommand.setLabel(label),
		addressCommand.setSnapshot(snapshot),
	); err != nil {
		return CreateAddressCommand{}, err
	}

	addressCommand.isDefault = isDefault
	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

func (c CreateAddressCommand) AddressID() kernel.UUID          { return c.addressID }
func (c CreateAddressCommand) OwnerID() kernel.UUID            { return c.ownerID }
func (c CreateAddressCommand) Label() string                   { return c.label }
func (c CreateAddressCommand) Snapshot() order.AddressSnapshot { return c.snapshot }
func (c CreateAddressCommand) IsDefault() bool                 { return c.isDefault }

func (c *CreateAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *CreateAddressCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateAddressCommand) setLabel(label string) error {
	if label == "" {
		return ErrAddressLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *CreateAddressCommand) setSnapshot(snapshot order.AddressSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	c.snapshot = snapshot
	return nil
}
