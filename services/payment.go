// services/payment.go
package services

import "errors"

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrExceedsBalance = errors.New("exceeds pending balance")
)

// PaymentState is the paid/pending breakdown of a booking. It is derived
// from the stored total and deposit on every use; FullyPaid is never an
// independently settable flag.
type PaymentState struct {
	Total     float64 `json:"total"`
	Deposit   float64 `json:"deposit"`
	Balance   float64 `json:"balance"`
	FullyPaid bool    `json:"fullyPaid"`
}

// DerivePaymentState computes the remaining balance and completeness flag
// for a booking total and the deposit paid so far.
func DerivePaymentState(total, deposit float64) PaymentState {
	balance := total - deposit
	return PaymentState{
		Total:     total,
		Deposit:   deposit,
		Balance:   balance,
		FullyPaid: balance <= 0,
	}
}

// ValidatePayment checks a proposed payment amount against the remaining
// balance. An amount exactly equal to the balance is accepted and completes
// the payment.
func ValidatePayment(amount, balance float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > balance {
		return ErrExceedsBalance
	}
	return nil
}
