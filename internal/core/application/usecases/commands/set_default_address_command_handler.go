package commands

import (
	"context"
)

// SetDefaultAddressCommandHandler promotes one entry to the owner's checkout
// default. The repository demotes the previous default in the same
// transaction, so the owner never has two.
type SetDefaultAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewSetDefaultAddressCommandHandler creates a handler for default selection.
func NewSetDefaultAddressCommandHandler(uowFactory AddressUoWFactory) SetDefaultAddressCommandHandler {
	return SetDefaultAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the default selection command.
func (h *SetDefaultAddressCommandHandler) Handle(ctx context.Context, cmd SetDefaultAddressCommand) error {
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

	entry.MakeDefault()
	if err = addressRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
