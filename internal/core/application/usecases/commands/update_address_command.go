package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// UpdateAddressCommand represents a request to edit an address book entry.
// Orders created from the previous revision keep their own snapshot.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	label     string
	snapshot  order.AddressSnapshot

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand creates a command to edit an address book entry.
func NewUpdateAddressCommand(
	addressID kernel.UUID,
	label string,
	snapshot order.AddressSnapshot,
) (UpdateAddressCommand, error) {
	addressCommand := UpdateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addressCommand.setAddressID(addressID),
		addressCommand.setLabel(label),
		addressCommand.setSnapshot(snapshot),
	); err != nil {
		return UpdateAddressCommand{}, err
	}

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

func (c UpdateAddressCommand) AddressID() kernel.UUID          { return c.addressID }
func (c UpdateAddressCommand) Label() string                   { return c.label }
func (c UpdateAddressCommand) Snapshot() order.AddressSnapshot { return c.snapshot }

func (c *UpdateAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *UpdateAddressCommand) setLabel(label string) error {
	if label == "" {
		return ErrAddressLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *UpdateAddressCommand) setSnapshot(snapshot order.AddressSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	c.snapshot = snapshot
	return nil
}
