package services

import (
	"testing"

	"reservahub-backend/models"
)

func TestBookingTransitions(t *testing.T) {
	t.Run("allowed transitions", func(t *testing.T) {
		allowed := [][2]string{
			{models.BookingPending, models.BookingConfirmed},
			{models.BookingPending, models.BookingCancelled},
			{models.BookingConfirmed, models.BookingCompleted},
			{models.BookingConfirmed, models.BookingNoShow},
			{models.BookingConfirmed, models.BookingCancelled},
		}
		for _, tc := range allowed {
			if !CanTransition(tc[0], tc[1]) {
				t.Errorf("%s -> %s should be allowed", tc[0], tc[1])
			}
		}
	})

	t.Run("terminal states accept no transitions", func(t *testing.T) {
		terminals := []string{models.BookingCancelled, models.BookingCompleted, models.BookingNoShow}
		targets := []string{
			models.BookingPending, models.BookingConfirmed, models.BookingCancelled,
			models.BookingCompleted, models.BookingNoShow,
		}
		for _, from := range terminals {
			if !IsTerminalStatus(from) {
				t.Errorf("%s should be terminal", from)
			}
			for _, to := range targets {
				if CanTransition(from, to) {
					t.Errorf("%s -> %s should be rejected", from, to)
				}
			}
		}
	})

	t.Run("skipping confirmation is rejected", func(t *testing.T) {
		if CanTransition(models.BookingPending, models.BookingCompleted) {
			t.Error("pending -> completed should be rejected")
		}
		if CanTransition(models.BookingPending, models.BookingNoShow) {
			t.Error("pending -> no_show should be rejected")
		}
	})
}
