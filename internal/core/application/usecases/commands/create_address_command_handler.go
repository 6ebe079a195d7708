package commands

import (
	"context"

	"marketplace/internal/core/domain/model/address"
)

// CreateAddressCommandHandler saves a new address book entry. When the entry
// is marked default, the repository clears the flag on the owner's other
// entries in the same transaction.
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewCreateAddressCommandHandler creates a handler for saving addresses.
func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address creation command.
func (h *CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := address.NewAddress(cmd.AddressID(), cmd.OwnerID(), cmd.Label(), cmd.Snapshot(), cmd.IsDefault())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AddressRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
