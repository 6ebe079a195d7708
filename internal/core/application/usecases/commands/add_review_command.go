package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddReviewCommandIsNotConstructed = errors.New(
		"AddReviewCommand must be created via NewAddReviewCommand constructor",
	)
	ErrReviewTargetIsInvalid = errs.NewValueIsInvalidError("review target")
)

// ReviewTarget selects which write-once review slot a command fills.
type ReviewTarget int

const (
	// ReviewTargetUnknown is the zero value and never valid.
	ReviewTargetUnknown ReviewTarget = iota
	// ReviewTargetOrder is the customer's review of the order itself.
	ReviewTargetOrder
	// ReviewTargetDriver is the customer's review of the delivery driver.
	ReviewTargetDriver
)

// Validate checks that the target names one of the two review slots.
func (t ReviewTarget) Validate() error {
	if t != ReviewTargetOrder && t != ReviewTargetDriver {
		return ErrReviewTargetIsInvalid
	}
	return nil
}

// AddReviewCommand represents a post-delivery review: a 1-5 rating and a
// text, aimed at either the order or its driver. Each slot accepts exactly
// one review.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  ReviewTarget
	rating  int
	text    string

	guard guard.ConstructorGuard
}

// NewAddReviewCommand creates a command to leave a review on a delivered
// order. Rating and text bounds are enforced by the aggregate so the failed
// attempt leaves no trace.
func NewAddReviewCommand(
	orderID kernel.UUID,
	target ReviewTarget,
	rating int,
	text string,
) (AddReviewCommand, error) {
	reviewCommand := AddReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setOrderID(orderID),
		reviewCommand.setTarget(target),
	); err != nil {
		return AddReviewCommand{}, err
	}

	reviewCommand.rating = rating
	reviewCommand.text = text
	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

func (c AddReviewCommand) OrderID() kernel.UUID { return c.orderID }
func (c AddReviewCommand) Target() ReviewTarget { return c.target }
func (c AddReviewCommand) Rating() int          { return c.rating }
func (c AddReviewCommand) Text() string         { return c.text }

func (c *AddReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddReviewCommand) setTarget(target ReviewTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
