package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// AddReviewCommandHandler stores a post-delivery review in the slot the
// command targets. The aggregate rejects reviews before delivery and any
// second review for the same slot.
type AddReviewCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddReviewCommandHandler creates a handler for review submission.
func NewAddReviewCommandHandler(uowFactory OrderUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
func (h *AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		if cmd.Target() == ReviewTargetDriver {
			return aggregate.AddDriverReview(cmd.Rating(), cmd.Text())
		}
		return aggregate.AddCustomerReview(cmd.Rating(), cmd.Text())
	})
	return err
}
