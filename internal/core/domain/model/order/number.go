package order

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"marketplace/internal/pkg/errs"
)

const (
	orderNumberPrefix = "ORD"
	dayLayout         = "20060102"
	sequenceDigits    = 4

	// MaxDailySequence bounds the per-day counter. Crossing it means the
	// four-digit number format no longer fits the traffic and is treated as a
	// fatal configuration error rather than silently wrapping.
	MaxDailySequence = 9999
)

var (
	// ErrDailySequenceExhausted is returned when more than MaxDailySequence
	// orders are created on one calendar day.
	ErrDailySequenceExhausted = errors.New("daily order number sequence exhausted")

	// ErrNumberGenerationConflict indicates two concurrent creators produced
	// the same order number. The creation flow retries with a fresh sequence a
	// bounded number of times; the uniqueness constraint on the stored number
	// stays authoritative.
	ErrNumberGenerationConflict = errors.New("order number generation conflict")
)

// OrderNumber is the human-readable, date-scoped order identifier in the form
// ORD{YYYYMMDD}{4-digit sequence}, e.g. ORD202601150042. It is globally unique
// and immutable once assigned. The calendar day is taken in UTC, the fixed
// reference timezone for number generation.
type OrderNumber struct {
	value string
}

// NewOrderNumber builds an order number for the given reference date and
// per-day sequence. Sequence values below 1 are invalid; values above
// MaxDailySequence surface ErrDailySequenceExhausted.
func NewOrderNumber(referenceDate time.Time, sequence int) (OrderNumber, error) {
	if sequence < 1 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence",
			fmt.Errorf("%d is not a positive sequence", sequence),
		)
	}
	if sequence > MaxDailySequence {
		return OrderNumber{}, fmt.Errorf("%w: sequence %d exceeds %d", ErrDailySequenceExhausted, sequence, MaxDailySequence)
	}

	day := referenceDate.UTC().Format(dayLayout)
	return OrderNumber{value: fmt.Sprintf("%s%s%0*d", orderNumberPrefix, day, sequenceDigits, sequence)}, nil
}

// ParseOrderNumber validates and wraps an order number string coming from
// persistence or external callers.
func ParseOrderNumber(s string) (OrderNumber, error) {
	invalid := func(cause error) (OrderNumber, error) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber", cause)
	}

	if len(s) != len(orderNumberPrefix)+len(dayLayout)+sequenceDigits {
		return invalid(fmt.Errorf("%q has wrong length", s))
	}
	if s[:len(orderNumberPrefix)] != orderNumberPrefix {
		return invalid(fmt.Errorf("%q does not start with %s", s, orderNumberPrefix))
	}

	dayPart := s[len(orderNumberPrefix) : len(orderNumberPrefix)+len(dayLayout)]
	if _, err := time.Parse(dayLayout, dayPart); err != nil {
		return invalid(fmt.Errorf("%q has an invalid date part: %w", s, err))
	}

	seqPart := s[len(s)-sequenceDigits:]
	seq, err := strconv.Atoi(seqPart)
	if err != nil || seq < 1 {
		return invalid(fmt.Errorf("%q has an invalid sequence part", s))
	}

	return OrderNumber{value: s}, nil
}

// String returns the full order number.
func (n OrderNumber) String() string {
	return n.value
}

// Day returns the UTC calendar day the number was issued for.
func (n OrderNumber) Day() time.Time {
	day, _ := time.Parse(dayLayout, n.value[len(orderNumberPrefix):len(orderNumberPrefix)+len(dayLayout)])
	return day
}

// Sequence returns the per-day sequence component.
func (n OrderNumber) Sequence() int {
	seq, _ := strconv.Atoi(n.value[len(n.value)-sequenceDigits:])
	return seq
}

// IsEqual reports whether two order numbers are the same identifier.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate returns an error for a zero-value OrderNumber.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("orderNumber must be created via NewOrderNumber or ParseOrderNumber")
	}
	return nil
}
