package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLineItem(t *testing.T, price float64, quantity int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Ceramic mug", price, quantity, kernel.NewUUID(), nil)
	require.NoError(t, err)
	return item
}

func testAddress(t *testing.T) order.AddressSnapshot {
	t.Helper()
	addr, err := order.NewAddressSnapshot("Alex Doe", "12 Main St", "Springfield", "IL", "62704", "US", "+1555000111")
	require.NoError(t, err)
	return addr
}

func testPayment(t *testing.T) order.PaymentDetails {
	t.Helper()
	payment, err := order.NewPaymentDetails(order.PaymentMethodCard, order.PaymentStatusPending)
	require.NoError(t, err)
	return payment
}

func testSummary(t *testing.T, subtotal, shipping, fee, taxes, discount float64) order.Summary {
	t.Helper()
	summary, err := order.NewSummary(subtotal, shipping, fee, taxes, discount, subtotal+shipping+fee+taxes-discount)
	require.NoError(t, err)
	return summary
}

// testOrder creates a pending order with two line items ($50x1 and $25x2).
func testOrder(t *testing.T) *order.Order {
	t.Helper()
	number, err := order.NewOrderNumber(time.Now().UTC(), 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		kernel.NewUUID(),
		[]order.LineItem{testLineItem(t, 50, 1), testLineItem(t, 25, 2)},
		testAddress(t),
		testAddress(t),
		testPayment(t),
		testSummary(t, 100, 10, 2, 8.7, 0),
		order.Details{},
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with initial tracking entry", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DriverID())
		assert.Nil(t, o.ActualDeliveryDate())
		assert.Equal(t, 1, o.Version())

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.Pending, history[0].Status())
		assert.Equal(t, 1, history[0].Sequence())
	})

	t.Run("should satisfy the summary invariant for the checkout scenario", func(t *testing.T) {
		// Two line items ($50x1, $25x2), shipping 10, marketplace fee 2,
		// taxes 8.7, no discount.
		o := testOrder(t)

		assert.InDelta(t, 100.0, o.Summary().Subtotal(), 1e-9)
		assert.InDelta(t, 120.7, o.Summary().Total(), 1e-9)
		assert.InDelta(t, 120.7, o.CalculateTotal(), 1e-9)
	})

	t.Run("should reject a summary that disagrees with line items", func(t *testing.T) {
		number, _ := order.NewOrderNumber(time.Now().UTC(), 2)

		_, err := order.NewOrder(
			kernel.NewUUID(),
			number,
			kernel.NewUUID(),
			[]order.LineItem{testLineItem(t, 50, 1)},
			testAddress(t),
			testAddress(t),
			testPayment(t),
			testSummary(t, 75, 10, 2, 8.7, 0), // subtotal does not match the $50 item
			order.Details{},
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an order without line items", func(t *testing.T) {
		number, _ := order.NewOrderNumber(time.Now().UTC(), 3)

		_, err := order.NewOrder(
			kernel.NewUUID(),
			number,
			kernel.NewUUID(),
			nil,
			testAddress(t),
			testAddress(t),
			testPayment(t),
			testSummary(t, 0, 0, 0, 0, 0),
			order.Details{},
		)

		require.ErrorIs(t, err, order.ErrProductsAreRequired)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("should append one ledger entry per transition", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.UpdateStatus(order.Processing, actor, "", ""))
		require.NoError(t, o.UpdateStatus(order.OutForDelivery, actor, "Sorting hub", "Package in transit"))
		require.NoError(t, o.UpdateStatus(order.Delivered, actor, "", ""))

		// Three transitions plus the creation entry.
		history := o.History()
		require.Len(t, history, 4)
		assert.Equal(t, order.Delivered, history[0].Status())
		assert.Equal(t, order.Pending, history[3].Status())
		require.NotNil(t, o.ActualDeliveryDate())
	})

	t.Run("should return history newest-first", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.UpdateStatus(order.Processing, actor, "", ""))

		history := o.History()

		require.Len(t, history, 2)
		assert.Equal(t, 2, history[0].Sequence())
		assert.Equal(t, 1, history[1].Sequence())
	})

	t.Run("should keep location, description, and actor on the entry", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.UpdateStatus(order.Processing, actor, "Warehouse 3", "Packing started"))

		entry := o.History()[0]
		assert.Equal(t, "Warehouse 3", entry.Location())
		assert.Equal(t, "Packing started", entry.Description())
		require.NotNil(t, entry.UpdatedBy())
		assert.True(t, entry.UpdatedBy().IsEqual(actor))
	})

	t.Run("should reject cancelled as a plain status update", func(t *testing.T) {
		o := testOrder(t)

		err := o.UpdateStatus(order.Cancelled, actor, "", "")

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("should assign and reassign before delivery", func(t *testing.T) {
		o := testOrder(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.AssignDriver(first, actor))
		require.NoError(t, o.AssignDriver(second, actor))

		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(second))
		assert.Len(t, o.History(), 3)
	})

	t.Run("should fail after delivery", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkAsDelivered("", actor))

		err := o.AssignDriver(kernel.NewUUID(), actor)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should fail after cancellation", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Cancel("customer request", actor))

		err := o.AssignDriver(kernel.NewUUID(), actor)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_MarkAsDelivered(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("should set delivery date and proof exactly once", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.MarkAsDelivered("photo-7c1f.jpg", actor))

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.ActualDeliveryDate())
		assert.Equal(t, "photo-7c1f.jpg", o.ProofOfDelivery())
		assert.Equal(t, order.Delivered, o.History()[0].Status())

		err := o.MarkAsDelivered("second.jpg", actor)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should fail for a cancelled order", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Cancel("out of stock", actor))

		err := o.MarkAsDelivered("", actor)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("should record the reason and a ledger entry", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.Cancel("customer request", actor))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "customer request", o.CancelReason())
		assert.Equal(t, order.Cancelled, o.History()[0].Status())
	})

	t.Run("should fail for a delivered order and leave state unchanged", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkAsDelivered("", actor))
		entriesBefore := len(o.History())

		err := o.Cancel("too late", actor)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Empty(t, o.CancelReason())
		assert.Len(t, o.History(), entriesBefore)
	})

	t.Run("should require a reason", func(t *testing.T) {
		o := testOrder(t)

		err := o.Cancel("", actor)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_InitiateRefund(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("should refund a cancelled order and flip the payment snapshot", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Cancel("out of stock", actor))

		require.NoError(t, o.InitiateRefund("order cancelled before shipment"))

		assert.Equal(t, order.Refunded, o.Status())
		assert.Equal(t, "order cancelled before shipment", o.RefundReason())
		assert.Equal(t, order.PaymentStatusRefunded, o.Payment().Status())
	})

	t.Run("should refund a delivered order", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkAsDelivered("", actor))

		require.NoError(t, o.InitiateRefund("damaged on arrival"))

		assert.Equal(t, order.Refunded, o.Status())
	})

	t.Run("should fail for a pending order", func(t *testing.T) {
		o := testOrder(t)

		err := o.InitiateRefund("changed my mind")

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentStatusPending, o.Payment().Status())
	})
}

func TestOrder_ConfirmPayment(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("should record the settled payment", func(t *testing.T) {
		o := testOrder(t)
		paidAt := time.Now().UTC()

		require.NoError(t, o.ConfirmPayment("tx-20260115-77", paidAt))

		assert.Equal(t, order.PaymentStatusPaid, o.Payment().Status())
		assert.Equal(t, "tx-20260115-77", o.Payment().TransactionID())
		require.NotNil(t, o.Payment().PaidAt())
	})

	t.Run("should not add a tracking entry", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.ConfirmPayment("tx-1", time.Now().UTC()))

		assert.Len(t, o.History(), 1)
	})

	t.Run("should fail once the order shipped", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.UpdateStatus(order.OutForDelivery, actor, "", ""))

		err := o.ConfirmPayment("tx-2", time.Now().UTC())

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should require a transaction id", func(t *testing.T) {
		o := testOrder(t)

		err := o.ConfirmPayment("", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Reviews(t *testing.T) {
	actor := kernel.NewUUID()

	deliveredOrder := func(t *testing.T) *order.Order {
		o := testOrder(t)
		require.NoError(t, o.MarkAsDelivered("", actor))
		return o
	}

	t.Run("customer review succeeds exactly once", func(t *testing.T) {
		o := deliveredOrder(t)

		require.NoError(t, o.AddCustomerReview(5, "Arrived early, great packaging"))

		review := o.CustomerReview()
		require.NotNil(t, review)
		assert.Equal(t, 5, review.Rating())
		assert.False(t, review.ReviewedAt().IsZero())

		err := o.AddCustomerReview(4, "Changed my mind")
		require.ErrorIs(t, err, order.ErrAlreadyReviewed)
		assert.Equal(t, 5, o.CustomerReview().Rating())
	})

	t.Run("review before delivery fails", func(t *testing.T) {
		o := testOrder(t)

		err := o.AddCustomerReview(5, "Looks promising")

		require.ErrorIs(t, err, order.ErrOrderNotDelivered)
		assert.Nil(t, o.CustomerReview())
	})

	t.Run("rating outside 1..5 is rejected before any mutation", func(t *testing.T) {
		o := deliveredOrder(t)

		require.ErrorIs(t, o.AddCustomerReview(0, "bad"), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, o.AddCustomerReview(6, "great"), errs.ErrValueIsOutOfRange)
		assert.Nil(t, o.CustomerReview())
	})

	t.Run("review text is required and bounded", func(t *testing.T) {
		o := deliveredOrder(t)

		require.ErrorIs(t, o.AddCustomerReview(5, ""), errs.ErrValueIsRequired)

		long := make([]byte, 1001)
		for i := range long {
			long[i] = 'a'
		}
		require.ErrorIs(t, o.AddCustomerReview(5, string(long)), errs.ErrValueIsOutOfRange)
	})

	t.Run("driver review requires an assigned driver", func(t *testing.T) {
		o := deliveredOrder(t)

		err := o.AddDriverReview(4, "n/a")

		require.ErrorIs(t, err, order.ErrNoDriverAssigned)
	})

	t.Run("driver review succeeds exactly once with a driver", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.AssignDriver(kernel.NewUUID(), actor))
		require.NoError(t, o.MarkAsDelivered("", actor))

		require.NoError(t, o.AddDriverReview(4, "Friendly and on time"))
		require.ErrorIs(t, o.AddDriverReview(5, "again"), order.ErrAlreadyReviewed)
	})
}

func TestOrder_UnsavedTrackingEvents(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("new order reports the creation entry as unsaved", func(t *testing.T) {
		o := testOrder(t)

		unsaved := o.UnsavedTrackingEvents()

		require.Len(t, unsaved, 1)
		assert.Equal(t, order.Pending, unsaved[0].Status())
	})

	t.Run("restored order reports only entries appended after load", func(t *testing.T) {
		o := testOrder(t)
		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              o.ID(),
			Number:          o.Number(),
			CustomerID:      o.CustomerID(),
			Products:        o.Products(),
			ShippingAddress: o.ShippingAddress(),
			BillingAddress:  o.BillingAddress(),
			Payment:         o.Payment(),
			Summary:         o.Summary(),
			Status:          order.Pending,
			Tracking:        o.History(),
			CreatedAt:       o.CreatedAt(),
			Version:         1,
		})
		require.NoError(t, err)
		require.Empty(t, restored.UnsavedTrackingEvents())

		require.NoError(t, restored.UpdateStatus(order.Processing, actor, "", ""))

		unsaved := restored.UnsavedTrackingEvents()
		require.Len(t, unsaved, 1)
		assert.Equal(t, order.Processing, unsaved[0].Status())
		assert.Equal(t, 2, unsaved[0].Sequence())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should reject invalid version", func(t *testing.T) {
		o := testOrder(t)

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:         o.ID(),
			Number:     o.Number(),
			CustomerID: o.CustomerID(),
			Status:     order.Pending,
			Version:    0,
		})

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o := testOrder(t)

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:         o.ID(),
			Number:     o.Number(),
			CustomerID: o.CustomerID(),
			Status:     order.Unknown,
			Version:    1,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

// TestOrder_DeliveryScenario walks the full checkout-to-review scenario:
// create with 2 line items, deliver, review once, reject the second review,
// reject a late cancellation.
func TestOrder_DeliveryScenario(t *testing.T) {
	actor := kernel.NewUUID()
	o := testOrder(t)

	assert.InDelta(t, 100.0, o.Summary().Subtotal(), 1e-9)
	assert.InDelta(t, 120.7, o.Summary().Total(), 1e-9)

	require.NoError(t, o.MarkAsDelivered("", actor))
	require.NotNil(t, o.ActualDeliveryDate())
	require.Len(t, o.History(), 2)
	assert.Equal(t, order.Delivered, o.History()[0].Status())

	require.NoError(t, o.AddCustomerReview(5, "Exactly as described"))
	require.ErrorIs(t, o.AddCustomerReview(5, "Again"), order.ErrAlreadyReviewed)
	require.ErrorIs(t, o.Cancel("no longer needed", actor), order.ErrInvalidTransition)
}
