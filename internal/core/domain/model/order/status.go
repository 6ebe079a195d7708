package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrInvalidTransition is returned when an operation is not legal from the
// order's current status. Callers recover by choosing a different operation;
// the transition is never retried automatically.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order. It implements a closed
// state machine: every transition is validated against the table below, and
// free-form status strings from the outside are parsed into this enumeration
// at the boundary.
//
// State transitions:
//
//	Pending ──> Processing ──> OutForDelivery ──> Delivered ──> Refunded
//	   │             │               │                │
//	   └─────────────┴───────────────┴──> Cancelled ──┘
//
// Cancelled is reachable from any non-delivered, non-terminal status.
// Refunded is reachable only from Cancelled or Delivered.
// Cancelled and Refunded orders are retained for audit and never deleted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at checkout.
	Pending

	// Processing indicates the seller accepted the order and is preparing it.
	Processing

	// OutForDelivery indicates the order left the seller and is in transit.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// Reviews become possible only in this status.
	Delivered

	// Cancelled is a terminal side-exit; the order is kept for audit.
	Cancelled

	// Refunded is a terminal status reachable from Cancelled or Delivered.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Processing:     "PROCESSING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
		Refunded:       "REFUNDED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Processing:     "PROCESSING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
		Refunded:       "REFUNDED",
	}
}

// StatusFromString parses a status name as supplied by external callers.
// Returns an error for anything outside the closed enumeration.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value belongs to the closed enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further lifecycle transitions are possible,
// except the Cancelled -> Refunded side-exit handled by Refund.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Refunded
}

// TransitionTo validates a general status change and returns the new status.
//
// Rules:
//   - no transitions out of Refunded
//   - out of Cancelled only to Refunded (use Refund)
//   - out of Delivered only to Refunded (use Refund)
//   - Cancelled requires Cancel, Refunded requires Refund; they are not
//     reachable through a plain status update
//   - delivering an already cancelled order is invalid
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() || s == Delivered {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	if next == Cancelled || next == Refunded {
		return Unknown, fmt.Errorf("%w: %s must be reached via its dedicated operation", ErrInvalidTransition, next)
	}
	return next, nil
}

// Deliver transitions the status to Delivered.
// Invalid when already delivered or in a terminal status; in particular a
// cancelled order can not be delivered.
func (s Status) Deliver() (Status, error) {
	if s == Delivered || s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, Delivered)
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// A delivered order can not be cancelled, and terminal statuses stay as they are.
func (s Status) Cancel() (Status, error) {
	if s == Delivered || s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, Cancelled)
	}
	return Cancelled, nil
}

// Refund transitions the status to Refunded.
// Only cancelled and delivered orders are refundable; refunding an order that
// was paid but never shipped stays disallowed on purpose.
func (s Status) Refund() (Status, error) {
	if s != Cancelled && s != Delivered {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, Refunded)
	}
	return Refunded, nil
}

// ValidateAssignDriver checks that a driver can still be assigned.
// Assignment and reassignment are allowed until the order is delivered,
// cancelled, or refunded.
func (s Status) ValidateAssignDriver() error {
	if s == Delivered || s.IsTerminal() {
		return fmt.Errorf("%w: can not assign driver in status %s", ErrInvalidTransition, s)
	}
	return nil
}
