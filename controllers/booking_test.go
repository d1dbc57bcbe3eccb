package controllers

import (
	"errors"
	"testing"
	"time"

	"reservahub-backend/models"
	"reservahub-backend/services"
)

func TestApplyPayment(t *testing.T) {
	t.Run("partial payment accumulates and re-derives balance", func(t *testing.T) {
		booking := models.Booking{TotalPrice: 10000, Deposit: 3000, PendingBalance: 7000}

		if err := applyPayment(&booking, 2000, models.PaymentCard); err != nil {
			t.Fatalf("applyPayment returned error: %v", err)
		}
		if booking.Deposit != 5000 {
			t.Errorf("Deposit = %v, want 5000", booking.Deposit)
		}
		if booking.PendingBalance != 5000 {
			t.Errorf("PendingBalance = %v, want 5000", booking.PendingBalance)
		}
		if booking.FullyPaid {
			t.Error("FullyPaid = true before the balance is cleared")
		}
		if booking.PaymentMethod != models.PaymentCard {
			t.Errorf("PaymentMethod = %q, want %q", booking.PaymentMethod, models.PaymentCard)
		}
	})

	t.Run("exact balance completes the payment", func(t *testing.T) {
		booking := models.Booking{TotalPrice: 10000, Deposit: 3000, PendingBalance: 7000}

		if err := applyPayment(&booking, 7000, ""); err != nil {
			t.Fatalf("applyPayment returned error: %v", err)
		}
		if booking.PendingBalance != 0 {
			t.Errorf("PendingBalance = %v, want 0", booking.PendingBalance)
		}
		if !booking.FullyPaid {
			t.Error("FullyPaid = false after paying the exact balance")
		}
	})

	t.Run("non-positive amount rejected without mutation", func(t *testing.T) {
		booking := models.Booking{TotalPrice: 10000, Deposit: 3000, PendingBalance: 7000}

		for _, amount := range []float64{0, -500} {
			if err := applyPayment(&booking, amount, ""); !errors.Is(err, services.ErrInvalidAmount) {
				t.Errorf("applyPayment(%v) error = %v, want ErrInvalidAmount", amount, err)
			}
		}
		if booking.Deposit != 3000 || booking.PendingBalance != 7000 || booking.FullyPaid {
			t.Errorf("booking mutated by rejected payment: %+v", booking)
		}
	})

	t.Run("amount above balance rejected without mutation", func(t *testing.T) {
		booking := models.Booking{TotalPrice: 10000, Deposit: 3000, PendingBalance: 7000}

		if err := applyPayment(&booking, 8000, ""); !errors.Is(err, services.ErrExceedsBalance) {
			t.Errorf("applyPayment(8000) error = %v, want ErrExceedsBalance", err)
		}
		if booking.Deposit != 3000 || booking.PendingBalance != 7000 {
			t.Errorf("booking mutated by rejected payment: %+v", booking)
		}
	})

	t.Run("empty method leaves existing method", func(t *testing.T) {
		booking := models.Booking{TotalPrice: 10000, Deposit: 0, PaymentMethod: models.PaymentCash}

		if err := applyPayment(&booking, 1000, ""); err != nil {
			t.Fatalf("applyPayment returned error: %v", err)
		}
		if booking.PaymentMethod != models.PaymentCash {
			t.Errorf("PaymentMethod = %q, want %q", booking.PaymentMethod, models.PaymentCash)
		}
	})
}

func TestNormalizeStart(t *testing.T) {
	// 2025-06-02 10:00 in the server location, re-expressed with a foreign
	// offset. The same instant must derive the same schedule day and clock.
	local := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	foreign := local.In(time.FixedZone("X", 10*60*60))

	got := normalizeStart(foreign)

	if !got.Equal(local) {
		t.Fatalf("normalizeStart changed the instant: %v != %v", got, local)
	}
	if got.Format("15:04") != local.Format("15:04") {
		t.Errorf("clock = %s, want %s", got.Format("15:04"), local.Format("15:04"))
	}
	if services.DayIndex(got) != services.DayIndex(local) {
		t.Errorf("DayIndex = %d, want %d", services.DayIndex(got), services.DayIndex(local))
	}
}
