package commands_test

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(_ context.Context, _ order.OrderNumber) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetAllOverdue(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockSequencer struct{ mock.Mock }

func (m *MockSequencer) Next(ctx context.Context, day time.Time) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCheckoutUoW struct{ MockOrderUoW }

func (m *MockCheckoutUoW) OrderNumberSequencer() ports.OrderNumberSequencer {
	args := m.Called()
	return args.Get(0).(ports.OrderNumberSequencer)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, a *address.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Update(ctx context.Context, a *address.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}

func (m *MockAddressRepository) GetAllByOwner(_ context.Context, _ kernel.UUID) ([]*address.Address, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockAddressRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAddressUoW struct{ mock.Mock }

func (m *MockAddressUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddressUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddressUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAddressUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type MockAddressUoWFactory struct{ mock.Mock }

func (m *MockAddressUoWFactory) Create() commands.AddressUoW {
	args := m.Called()
	return args.Get(0).(commands.AddressUoW)
}

type MockStatusNotifier struct{ mock.Mock }

func (m *MockStatusNotifier) NotifyStatusChanged(ctx context.Context, event ports.StatusChangedEvent) {
	m.Called(ctx, event)
}
