package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// maxConcurrencyRetries bounds how many times a command reloads and reapplies
// its change after losing a version check to a concurrent writer.
const maxConcurrencyRetries = 3

// mutateOrder runs the load-mutate-save cycle shared by every command that
// changes an existing order. Each attempt reads a fresh copy of the aggregate
// inside its own transaction; a version conflict on save triggers a retry,
// any other error is returned as is.
//
// The returned event describes the committed change so handlers can notify
// after the transaction is durable.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) (ports.StatusChangedEvent, error) {
	var lastErr error
	for attempt := 0; attempt < maxConcurrencyRetries; attempt++ {
		event, err := tryMutateOrder(ctx, uowFactory, orderID, mutate)
		if err == nil {
			return event, nil
		}
		if !errors.Is(err, errs.ErrConcurrentModification) {
			return ports.StatusChangedEvent{}, err
		}
		lastErr = err
	}

	return ports.StatusChangedEvent{}, lastErr
}

func tryMutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) (ports.StatusChangedEvent, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.StatusChangedEvent{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return ports.StatusChangedEvent{}, err
	}

	previous := aggregate.Status()
	if err = mutate(aggregate); err != nil {
		return ports.StatusChangedEvent{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ports.StatusChangedEvent{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.StatusChangedEvent{}, err
	}

	return ports.StatusChangedEvent{
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.Number(),
		CustomerID:  aggregate.CustomerID(),
		Previous:    previous,
		Current:     aggregate.Status(),
	}, nil
}
