package services

import (
	"errors"
	"testing"
)

func TestDerivePaymentState(t *testing.T) {
	cases := []struct {
		name          string
		total         float64
		deposit       float64
		wantBalance   float64
		wantFullyPaid bool
	}{
		{"partial deposit", 10000, 3000, 7000, false},
		{"full deposit", 10000, 10000, 0, true},
		{"no deposit", 10000, 0, 10000, false},
		{"deposit above total still reads as paid", 10000, 12000, -2000, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := DerivePaymentState(tc.total, tc.deposit)
			if state.Balance != tc.wantBalance {
				t.Errorf("balance = %.2f, want %.2f", state.Balance, tc.wantBalance)
			}
			if state.FullyPaid != tc.wantFullyPaid {
				t.Errorf("fullyPaid = %v, want %v", state.FullyPaid, tc.wantFullyPaid)
			}
		})
	}
}

func TestValidatePayment(t *testing.T) {
	t.Run("amount above balance is rejected", func(t *testing.T) {
		if err := ValidatePayment(8000, 7000); !errors.Is(err, ErrExceedsBalance) {
			t.Fatalf("err = %v, want ErrExceedsBalance", err)
		}
	})

	t.Run("zero and negative amounts are rejected", func(t *testing.T) {
		for _, amount := range []float64{0, -500} {
			if err := ValidatePayment(amount, 7000); !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("ValidatePayment(%.2f) = %v, want ErrInvalidAmount", amount, err)
			}
		}
	})

	t.Run("exact balance is accepted and completes payment", func(t *testing.T) {
		if err := ValidatePayment(7000, 7000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		state := DerivePaymentState(10000, 3000+7000)
		if !state.FullyPaid {
			t.Fatal("payment of the exact balance must flip fullyPaid")
		}
	})
}
