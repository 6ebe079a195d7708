package order

import (
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod enumerates the payment instruments the checkout collaborator
// can report. The core records the method; it never talks to a gateway.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	PaymentMethodCard
	PaymentMethodBankTransfer
	PaymentMethodWallet
	PaymentMethodCashOnDelivery
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodCard:           "CARD",
		PaymentMethodBankTransfer:   "BANK_TRANSFER",
		PaymentMethodWallet:         "WALLET",
		PaymentMethodCashOnDelivery: "CASH_ON_DELIVERY",
	}
}

// PaymentMethodFromString parses a payment method name at the boundary.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
}

func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks the method belongs to the closed enumeration.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// PaymentStatus is the payment-side status snapshot. It moves only through the
// payment-confirmation and refund flows, never through arbitrary order updates.
type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusPending
	PaymentStatusPaid
	PaymentStatusFailed
	PaymentStatusRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusPending:  "PENDING",
		PaymentStatusPaid:     "PAID",
		PaymentStatusFailed:   "FAILED",
		PaymentStatusRefunded: "REFUNDED",
	}
}

func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks the status belongs to the closed enumeration.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// PaymentDetails is the payment snapshot attached to an order: the method and
// status as reported by the payment collaborator, plus the gateway transaction
// reference and time once the payment settled.
type PaymentDetails struct {
	method        PaymentMethod
	status        PaymentStatus
	transactionID string
	paidAt        *time.Time
}

// NewPaymentDetails creates the payment snapshot captured at order creation.
func NewPaymentDetails(method PaymentMethod, status PaymentStatus) (PaymentDetails, error) {
	if err := method.Validate(); err != nil {
		return PaymentDetails{}, err
	}
	if err := status.Validate(); err != nil {
		return PaymentDetails{}, err
	}
	return PaymentDetails{method: method, status: status}, nil
}

// RestorePaymentDetails reconstructs a snapshot from persistence.
func RestorePaymentDetails(
	method PaymentMethod,
	status PaymentStatus,
	transactionID string,
	paidAt *time.Time,
) (PaymentDetails, error) {
	details, err := NewPaymentDetails(method, status)
	if err != nil {
		return PaymentDetails{}, err
	}
	details.transactionID = transactionID
	details.paidAt = paidAt
	return details, nil
}

func (p PaymentDetails) Method() PaymentMethod { return p.method }
func (p PaymentDetails) Status() PaymentStatus { return p.status }
func (p PaymentDetails) TransactionID() string { return p.transactionID }
func (p PaymentDetails) PaidAt() *time.Time    { return p.paidAt }

// markPaid records a settled payment pushed by the payment collaborator.
func (p PaymentDetails) markPaid(transactionID string, paidAt time.Time) (PaymentDetails, error) {
	if transactionID == "" {
		return PaymentDetails{}, errs.NewValueIsRequiredError("transactionId")
	}
	p.status = PaymentStatusPaid
	p.transactionID = transactionID
	p.paidAt = &paidAt
	return p, nil
}

// markRefunded flips the payment status as part of the refund transition.
func (p PaymentDetails) markRefunded() PaymentDetails {
	p.status = PaymentStatusRefunded
	return p
}
