package order

import (
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
)

// moneyEpsilon absorbs float rounding when comparing currency amounts.
const moneyEpsilon = 1e-6

// Summary holds the monetary breakdown of an order.
//
// Invariant: total == subtotal + shippingFee + marketplaceFee + taxes - discount
// (discount defaults to 0). The invariant is checked on construction and after
// any summary mutation; a stored total never silently diverges from the parts.
type Summary struct {
	subtotal       float64
	shippingFee    float64
	marketplaceFee float64
	taxes          float64
	discount       float64
	total          float64
}

// NewSummary creates a validated order summary. All amounts must be
// non-negative and the total must satisfy the summary invariant.
func NewSummary(subtotal, shippingFee, marketplaceFee, taxes, discount, total float64) (Summary, error) {
	for param, v := range map[string]float64{
		"subtotal":       subtotal,
		"shippingFee":    shippingFee,
		"marketplaceFee": marketplaceFee,
		"taxes":          taxes,
		"discount":       discount,
	} {
		if v < 0 {
			return Summary{}, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%f is negative", v))
		}
	}

	s := Summary{
		subtotal:       subtotal,
		shippingFee:    shippingFee,
		marketplaceFee: marketplaceFee,
		taxes:          taxes,
		discount:       discount,
		total:          total,
	}
	if err := s.Validate(); err != nil {
		return Summary{}, err
	}
	return s, nil
}

func (s Summary) Subtotal() float64       { return s.subtotal }
func (s Summary) ShippingFee() float64    { return s.shippingFee }
func (s Summary) MarketplaceFee() float64 { return s.marketplaceFee }
func (s Summary) Taxes() float64          { return s.taxes }
func (s Summary) Discount() float64       { return s.discount }
func (s Summary) Total() float64          { return s.total }

// CalculateTotal recomputes the total from the stored parts. Pure; it does not
// mutate the summary. Callers decide whether to persist the recomputed value.
func (s Summary) CalculateTotal() float64 {
	return s.subtotal + s.shippingFee + s.marketplaceFee + s.taxes - s.discount
}

// Validate checks the summary invariant.
func (s Summary) Validate() error {
	if math.Abs(s.total-s.CalculateTotal()) > moneyEpsilon {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderSummary",
			fmt.Errorf("total %.2f does not match computed total %.2f", s.total, s.CalculateTotal()),
		)
	}
	return nil
}
