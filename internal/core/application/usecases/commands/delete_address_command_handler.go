package commands

import (
	"context"
)

// DeleteAddressCommandHandler removes an address book entry.
type DeleteAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewDeleteAddressCommandHandler creates a handler for address removal.
func NewDeleteAddressCommandHandler(uowFactory AddressUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address removal command.
func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
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

	if err := uow.AddressRepository().Delete(ctx, cmd.AddressID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
