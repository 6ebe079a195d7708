package commands

import (
	"context"
)

// UpdateAddressCommandHandler edits an existing address book entry.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewUpdateAddressCommandHandler creates a handler for editing addresses.
func NewUpdateAddressCommandHandler(uowFactory AddressUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address edit command.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	addressRepo := uow.AddressRepository()
	entry, err := addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}

	if err = entry.Update(cmd.Label(), cmd.Snapshot()); err != nil {
		return err
	}

	if err = addressRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
