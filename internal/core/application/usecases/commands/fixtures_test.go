package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func fixtureLineItems(t *testing.T) []order.LineItem {
	t.Helper()
	first, err := order.NewLineItem(kernel.NewUUID(), "Ceramic mug", 50, 1, kernel.NewUUID(), nil)
	require.NoError(t, err)
	second, err := order.NewLineItem(kernel.NewUUID(), "Tea sampler", 25, 2, kernel.NewUUID(), nil)
	require.NoError(t, err)
	return []order.LineItem{first, second}
}

func fixtureAddress(t *testing.T) order.AddressSnapshot {
	t.Helper()
	addr, err := order.NewAddressSnapshot("Alex Doe", "12 Main St", "Springfield", "IL", "62704", "US", "")
	require.NoError(t, err)
	return addr
}

// fixtureOrder builds a pending order the way checkout would.
func fixtureOrder(t *testing.T) *order.Order {
	t.Helper()
	number, err := order.NewOrderNumber(time.Now().UTC(), 1)
	require.NoError(t, err)
	payment, err := order.NewPaymentDetails(order.PaymentMethodCard, order.PaymentStatusPending)
	require.NoError(t, err)
	summary, err := order.NewSummary(100, 10, 2, 8.7, 0, 120.7)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		kernel.NewUUID(),
		fixtureLineItems(t),
		fixtureAddress(t),
		fixtureAddress(t),
		payment,
		summary,
		order.Details{},
	)
	require.NoError(t, err)
	return aggregate
}
