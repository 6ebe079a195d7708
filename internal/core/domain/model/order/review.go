package order

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
)

// maxReviewTextLength bounds the free-form review text.
const maxReviewTextLength = 1000

var (
	// ErrOrderNotDelivered is returned when a review is submitted before the
	// order reached Delivered.
	ErrOrderNotDelivered = errors.New("order is not delivered")

	// ErrAlreadyReviewed is returned on a second review submission for the
	// same role. Reviews are write-once; corrections happen outside this core.
	ErrAlreadyReviewed = errors.New("review already submitted")

	// ErrNoDriverAssigned is returned when a driver review is submitted for an
	// order that never had a driver assigned.
	ErrNoDriverAssigned = errors.New("no driver assigned")
)

// Review is a write-once post-delivery review left by the customer or for the
// driver. Rating is an integer from 1 to 5; text is required and bounded.
type Review struct {
	rating     int
	text       string
	reviewedAt time.Time
}

// NewReview validates rating and text before any order mutation happens.
func NewReview(rating int, text string, reviewedAt time.Time) (Review, error) {
	if rating < 1 || rating > 5 {
		return Review{}, errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}
	if text == "" {
		return Review{}, errs.NewValueIsRequiredError("review text")
	}
	if len(text) > maxReviewTextLength {
		return Review{}, errs.NewValueIsOutOfRangeError("review text length", len(text), 1, maxReviewTextLength)
	}
	return Review{rating: rating, text: text, reviewedAt: reviewedAt}, nil
}

func (r Review) Rating() int           { return r.rating }
func (r Review) Text() string          { return r.text }
func (r Review) ReviewedAt() time.Time { return r.reviewedAt }
