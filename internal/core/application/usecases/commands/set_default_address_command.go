package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrSetDefaultAddressCommandIsNotConstructed = errors.New(
	"SetDefaultAddressCommand must be created via NewSetDefaultAddressCommand constructor",
)

// SetDefaultAddressCommand represents a request to make one address book
// entry the checkout default for its owner.
type SetDefaultAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetDefaultAddressCommand creates a command to change the default address.
func NewSetDefaultAddressCommand(addressID kernel.UUID) (SetDefaultAddressCommand, error) {
	addressCommand := SetDefaultAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := addressCommand.setAddressID(addressID); err != nil {
		return SetDefaultAddressCommand{}, err
	}

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDefaultAddressCommand) Validate() error {
	return c.guard.Validate(ErrSetDefaultAddressCommandIsNotConstructed)
}

func (c SetDefaultAddressCommand) AddressID() kernel.UUID { return c.addressID }

func (c *SetDefaultAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}
