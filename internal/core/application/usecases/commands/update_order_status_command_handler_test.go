package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t)
	actor := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Processing, actor, "", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockStatusNotifier)
	notifier.On("NotifyStatusChanged", mock.Anything, mock.MatchedBy(func(e ports.StatusChangedEvent) bool {
		return e.Previous == order.Pending && e.Current == order.Processing && e.OrderID.IsEqual(aggregate.ID())
	})).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Processing, aggregate.Status())
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_RetriesVersionConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t)
	actor := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Processing, actor, "", "")
	require.NoError(t, err)

	// The first save loses the version check; the handler reloads and the
	// second attempt commits.
	conflict := errs.NewConcurrentModificationError("order", aggregate.ID())
	stale := fixtureOrder(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(stale, nil).Once()
	repo.On("Update", mock.Anything, stale).Return(conflict).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	notifier := new(MockStatusNotifier)
	notifier.On("NotifyStatusChanged", mock.Anything, mock.Anything).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_GivesUpAfterRepeatedConflicts(t *testing.T) {
	ctx := t.Context()
	actor := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Processing, actor, "", "")
	require.NoError(t, err)

	conflict := errs.NewConcurrentModificationError("order", orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("OrderRepository").Return(repo).Times(3)
	repo.On("Get", mock.Anything, orderID).
		Return(fixtureOrder(t), nil).Times(3)
	repo.On("Update", mock.Anything, mock.Anything).Return(conflict).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	notifier := new(MockStatusNotifier)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	notifier.AssertNotCalled(t, "NotifyStatusChanged", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t)
	actor := kernel.NewUUID()
	require.NoError(t, aggregate.Cancel("customer request", actor))

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Processing, actor, "", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockStatusNotifier)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyStatusChanged", mock.Anything, mock.Anything)
}
