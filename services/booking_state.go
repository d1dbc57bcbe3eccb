// services/booking_state.go
package services

import "reservahub-backend/models"

// Allowed booking transitions. The server is the single authority for the
// lifecycle; clients only request transitions and re-render the result.
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | no_show | cancelled
var bookingTransitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingNoShow, models.BookingCancelled},
}

// IsTerminalStatus reports whether a booking accepts no further transitions.
func IsTerminalStatus(status string) bool {
	return len(bookingTransitions[status]) == 0
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
