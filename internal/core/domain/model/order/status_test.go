package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all lifecycle statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Processing, order.OutForDelivery,
			order.Delivered, order.Cancelled, order.Refunded,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse canonical names", func(t *testing.T) {
		s, err := order.StatusFromString("OUT_FOR_DELIVERY")

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, s)
	})

	t.Run("should reject free-form strings", func(t *testing.T) {
		_, err := order.StatusFromString("shipped maybe")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should follow the happy path", func(t *testing.T) {
		s := order.Pending
		for _, next := range []order.Status{order.Processing, order.OutForDelivery, order.Delivered} {
			got, err := s.TransitionTo(next)
			require.NoError(t, err)
			s = got
		}
		assert.Equal(t, order.Delivered, s)
	})

	t.Run("should not leave terminal statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Cancelled, order.Refunded} {
			_, err := s.TransitionTo(order.Processing)
			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})

	t.Run("should not reach cancelled or refunded without the dedicated operation", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Cancelled)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		_, err = order.Pending.TransitionTo(order.Refunded)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should not move a delivered order", func(t *testing.T) {
		_, err := order.Delivered.TransitionTo(order.Processing)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should deliver from any active status", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Processing, order.OutForDelivery} {
			got, err := s.Deliver()
			require.NoError(t, err)
			assert.Equal(t, order.Delivered, got)
		}
	})

	t.Run("should fail when already delivered", func(t *testing.T) {
		_, err := order.Delivered.Deliver()
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should fail for a cancelled order", func(t *testing.T) {
		// Regression guard: cancellation is terminal, a cancelled order can
		// never be delivered afterwards.
		_, err := order.Cancelled.Deliver()
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel any undelivered order", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Processing, order.OutForDelivery} {
			got, err := s.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, got)
		}
	})

	t.Run("should fail for a delivered order", func(t *testing.T) {
		_, err := order.Delivered.Cancel()
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should fail when already terminal", func(t *testing.T) {
		_, err := order.Cancelled.Cancel()
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		_, err = order.Refunded.Cancel()
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_Refund(t *testing.T) {
	t.Run("should refund cancelled and delivered orders", func(t *testing.T) {
		for _, s := range []order.Status{order.Cancelled, order.Delivered} {
			got, err := s.Refund()
			require.NoError(t, err)
			assert.Equal(t, order.Refunded, got)
		}
	})

	t.Run("should fail for a pending order", func(t *testing.T) {
		_, err := order.Pending.Refund()
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should fail for orders still in fulfillment", func(t *testing.T) {
		for _, s := range []order.Status{order.Processing, order.OutForDelivery, order.Refunded} {
			_, err := s.Refund()
			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestStatus_ValidateAssignDriver(t *testing.T) {
	t.Run("should allow assignment before delivery", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Processing, order.OutForDelivery} {
			require.NoError(t, s.ValidateAssignDriver())
		}
	})

	t.Run("should reject assignment afterwards", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Cancelled, order.Refunded} {
			require.ErrorIs(t, s.ValidateAssignDriver(), order.ErrInvalidTransition)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "OUT_FOR_DELIVERY", order.OutForDelivery.String())
	assert.Equal(t, "UNKNOWN", order.Status(99).String())
}
