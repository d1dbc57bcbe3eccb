// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"reservahub-backend/config"
	"reservahub-backend/models"
	"reservahub-backend/services"
	"reservahub-backend/utils"
)

// CreateBookingInput defines the expected JSON structure for creating a booking.
// Deposit is optional; a zero deposit books the slot with the full price pending.
type CreateBookingInput struct {
	ResourceID    uuid.UUID `json:"resourceId" binding:"required"`
	StartTime     time.Time `json:"startTime" binding:"required"`
	Deposit       float64   `json:"deposit" binding:"omitempty,gt=0"`
	PaymentMethod string    `json:"paymentMethod" binding:"omitempty,oneof=cash card transfer"`
	ClientNotes   string    `json:"clientNotes"`
}

// RecordPaymentInput defines the expected JSON structure for recording a payment
type RecordPaymentInput struct {
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"omitempty,oneof=cash card transfer"`
}

// CancelBookingInput carries the optional cancellation reason
type CancelBookingInput struct {
	Reason string `json:"reason"`
}

// NoShowInput carries optional provider notes for a no-show
type NoShowInput struct {
	Notes string `json:"notes"`
}

// ConfirmPaymentInput carries optional notes when the provider confirms payment
type ConfirmPaymentInput struct {
	Notes string `json:"notes"`
}

// normalizeStart brings a client-supplied timestamp into the server's
// location. Day-of-week and HH:MM derivation must happen in one canonical
// location or a non-local offset buckets the booking to the wrong schedule
// day.
func normalizeStart(t time.Time) time.Time {
	return t.In(time.Local)
}

// applyPayment validates the amount against the booking's remaining balance,
// accumulates it into the deposit and re-derives balance and the paid flag.
func applyPayment(booking *models.Booking, amount float64, method string) error {
	state := services.DerivePaymentState(booking.TotalPrice, booking.Deposit)
	if err := services.ValidatePayment(amount, state.Balance); err != nil {
		return err
	}

	booking.Deposit += amount
	next := services.DerivePaymentState(booking.TotalPrice, booking.Deposit)
	booking.PendingBalance = next.Balance
	booking.FullyPaid = next.FullyPaid
	if method != "" {
		booking.PaymentMethod = method
	}
	return nil
}

// scheduleFor returns the active schedule covering the given instant for the
// resource, or gorm.ErrRecordNotFound if the slot falls outside every window.
func scheduleFor(resourceID uuid.UUID, at time.Time) (*models.Schedule, error) {
	clock := at.Format("15:04")
	var schedule models.Schedule
	err := config.DB.
		Where("resource_id = ? AND day_of_week = ? AND is_active = ?", resourceID, services.DayIndex(at), true).
		Where("start_time <= ? AND end_time > ?", clock, clock).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// CreateBooking books a slot for the authenticated client. The price comes
// from the schedule covering the slot, and the slot must not overlap an
// existing pending or confirmed booking on the resource.
func CreateBooking(c *gin.Context) {
	client, ok := clientFromContext(c)
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	start := normalizeStart(input.StartTime)

	if start.Before(time.Now()) {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot book a slot in the past")
		return
	}

	var resource models.Resource
	if err := config.DB.First(&resource, "id = ? AND is_active = ?", input.ResourceID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Resource not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	schedule, err := scheduleFor(resource.ID, start)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "No schedule covers the requested time")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !services.SlotAligned(*schedule, start.Format("15:04")) {
		utils.RespondWithError(c, http.StatusBadRequest, "Start time does not fall on a slot boundary")
		return
	}

	endTime := start.Add(time.Duration(schedule.SlotDuration) * time.Minute)

	// Overlap check against live bookings on the same resource
	var conflicts int64
	err = config.DB.Model(&models.Booking{}).
		Where("resource_id = ? AND status IN ?", resource.ID,
			[]string{models.BookingPending, models.BookingConfirmed}).
		Where("start_time < ? AND end_time > ?", endTime, start).
		Count(&conflicts).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if conflicts > 0 {
		utils.RespondWithError(c, http.StatusConflict, "The requested slot is already booked")
		return
	}

	if input.Deposit > schedule.Price {
		utils.RespondWithError(c, http.StatusBadRequest, "Deposit cannot exceed the total price")
		return
	}

	state := services.DerivePaymentState(schedule.Price, input.Deposit)

	booking := models.Booking{
		ClientID:        client.ID,
		ResourceID:      resource.ID,
		StartTime:       start,
		EndTime:         endTime,
		DurationMinutes: schedule.SlotDuration,
		Status:          models.BookingPending,
		TotalPrice:      state.Total,
		Deposit:         state.Deposit,
		PendingBalance:  state.Balance,
		FullyPaid:       state.FullyPaid,
		PaymentMethod:   input.PaymentMethod,
		ClientNotes:     input.ClientNotes,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetMyBookings lists the authenticated client's bookings, optionally
// filtered by ?status=
func GetMyBookings(c *gin.Context) {
	client, ok := clientFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Where("client_id = ?", client.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Preload("Resource").Preload("Resource.Service").
		Order("start_time desc").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves one of the authenticated client's bookings
func GetBooking(c *gin.Context) {
	client, ok := clientFromContext(c)
	if !ok {
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Resource").Preload("Resource.Service").
		First(&booking, "id = ? AND client_id = ?", bookingUUID, client.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CancelBooking cancels a pending or confirmed booking (client side)
func CancelBooking(c *gin.Context) {
	client, ok := clientFromContext(c)
	if !ok {
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input CancelBookingInput
	_ = c.ShouldBindJSON(&input) // body is optional

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ? AND client_id = ?", bookingUUID, client.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if services.IsTerminalStatus(booking.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking is already "+booking.Status)
		return
	}
	if !services.CanTransition(booking.Status, models.BookingCancelled) {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking cannot be cancelled in its current status")
		return
	}

	now := time.Now()
	booking.Status = models.BookingCancelled
	booking.CancelReason = input.Reason
	booking.CancelledAt = &now

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// RecordPayment applies a payment toward the booking's pending balance.
// The deposit accumulates and the balance and paid flag are re-derived.
func RecordPayment(c *gin.Context) {
	client, ok := clientFromContext(c)
	if !ok {
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ? AND client_id = ?", bookingUUID, client.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if booking.Status == models.BookingCancelled {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot record a payment on a cancelled booking")
		return
	}

	if err := applyPayment(&booking, input.Amount, input.PaymentMethod); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment amount")
		case errors.Is(err, services.ErrExceedsBalance):
			utils.RespondWithError(c, http.StatusBadRequest, "Payment exceeds pending balance")
		default:
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetProviderBookings lists bookings across all the provider's resources,
// optionally filtered by ?status=
func GetProviderBookings(c *gin.Context) {
	provider, ok := providerFromContext(c)
	if !ok {
		return
	}

	query := providerBookings(provider.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("bookings.status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Preload("Client").Preload("Resource").
		Order("bookings.start_time desc").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingsByResource lists a resource's bookings for the provider,
// optionally narrowed to a single day with ?date=YYYY-MM-DD
func GetBookingsByResource(c *gin.Context) {
	provider, ok := providerFromContext(c)
	if !ok {
		return
	}

	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	if _, err := findOwnedResource(provider.ID, resourceUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Resource not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	query := config.DB.Where("resource_id = ?", resourceUUID)
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		dayStart := utils.BeginningOfDay(date)
		query = query.Where("start_time >= ? AND start_time < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}

	var bookings []models.Booking
	if err := query.Preload("Client").Order("start_time").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// findProviderBooking loads a booking only if it sits on one of the
// provider's resources.
func findProviderBooking(providerID, bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := providerBookings(providerID).
		Where("bookings.id = ?", bookingID).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// transitionBooking moves a provider's booking to the target status after
// checking the lifecycle table.
func transitionBooking(c *gin.Context, target string) *models.Booking {
	provider, ok := providerFromContext(c)
	if !ok {
		return nil
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return nil
	}

	booking, err := findProviderBooking(provider.ID, bookingUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil
	}

	if services.IsTerminalStatus(booking.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking is already "+booking.Status)
		return nil
	}
	if !services.CanTransition(booking.Status, target) {
		utils.RespondWithError(c, http.StatusBadRequest,
			"Booking cannot move from "+booking.Status+" to "+target)
		return nil
	}

	booking.Status = target
	return booking
}

// ConfirmBooking moves a pending booking to confirmed (provider)
func ConfirmBooking(c *gin.Context) {
	booking := transitionBooking(c, models.BookingConfirmed)
	if booking == nil {
		return
	}

	if err := config.DB.Save(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to confirm booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CompleteBooking moves a confirmed booking to completed (provider)
func CompleteBooking(c *gin.Context) {
	booking := transitionBooking(c, models.BookingCompleted)
	if booking == nil {
		return
	}

	if err := config.DB.Save(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to complete booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// MarkNoShow flags a confirmed booking whose start time has passed (provider)
func MarkNoShow(c *gin.Context) {
	var input NoShowInput
	_ = c.ShouldBindJSON(&input) // body is optional

	booking := transitionBooking(c, models.BookingNoShow)
	if booking == nil {
		return
	}

	if booking.StartTime.After(time.Now()) {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot mark a future booking as no-show")
		return
	}

	if input.Notes != "" {
		booking.InternalNotes = input.Notes
	}

	if err := config.DB.Save(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to mark no-show")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ConfirmPayment lets the provider acknowledge that the recorded payments
// were actually received.
func ConfirmPayment(c *gin.Context) {
	provider, ok := providerFromContext(c)
	if !ok {
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input ConfirmPaymentInput
	_ = c.ShouldBindJSON(&input) // body is optional

	booking, err := findProviderBooking(provider.ID, bookingUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	booking.PaymentConfirmed = true
	if input.Notes != "" {
		booking.PaymentNotes = input.Notes
	}

	if err := config.DB.Save(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to confirm payment")
		return
	}

	c.JSON(http.StatusOK, booking)
}
