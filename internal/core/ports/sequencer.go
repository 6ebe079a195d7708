package ports

import (
	"context"
	"time"
)

// OrderNumberSequencer hands out the next per-day order sequence value.
//
// Implementations must be transactional: the returned value is only consumed
// if the surrounding transaction commits, so a failed order creation never
// leaves a gap in the day's sequence.
type OrderNumberSequencer interface {
	// Next returns the next sequence value for the UTC calendar day of the
	// given reference time, starting at 1.
	Next(ctx context.Context, day time.Time) (int, error)
}
