package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteAddressCommandIsNotConstructed = errors.New(
	"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
)

// DeleteAddressCommand represents a request to remove an address book entry.
// Orders keep their copied snapshots, so history is unaffected.
type DeleteAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAddressCommand creates a command to remove an address book entry.
func NewDeleteAddressCommand(addressID kernel.UUID) (DeleteAddressCommand, error) {
	addressCommand := DeleteAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := addressCommand.setAddressID(addressID); err != nil {
		return DeleteAddressCommand{}, err
	}

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddressCommandIsNotConstructed)
}

func (c DeleteAddressCommand) AddressID() kernel.UUID { return c.addressID }

func (c *DeleteAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}
