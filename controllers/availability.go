// controllers/availability.go
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

// GetResourceAvailability expands a resource's schedules for the requested
// day and marks slots taken by live bookings (public).
// Requires ?date=YYYY-MM-DD.
func GetResourceAvailability(c *gin.Context) {
	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	var resource models.Resource
	if err := config.DB.First(&resource, "id = ? AND is_active = ?", resourceUUID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Resource not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var schedules []models.Schedule
	if err := config.DB.Where("resource_id = ? AND is_active = ?", resource.ID, true).
		Find(&schedules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedules")
		return
	}

	occupied, err := occupiedStartTimes(resource.ID, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	slots := services.BuildDaySlots(schedules, date, occupied)

	c.JSON(http.StatusOK, gin.H{
		"resourceId": resource.ID,
		"date":       dateStr,
		"slots":      slots,
	})
}

// GetOccupiedStartTimes lists the start times (HH:MM) of live bookings on a
// resource for a day (public). Frontends use this to grey out taken slots
// without pulling full booking records.
func GetOccupiedStartTimes(c *gin.Context) {
	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	occupied, err := occupiedStartTimes(resourceUUID, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resourceId": resourceUUID,
		"date":       dateStr,
		"occupied":   occupied,
	})
}

// occupiedStartTimes returns the HH:MM start times of pending and confirmed
// bookings on the resource for the given day.
func occupiedStartTimes(resourceID uuid.UUID, date time.Time) ([]string, error) {
	dayStart := utils.BeginningOfDay(date)

	var bookings []models.Booking
	err := config.DB.
		Where("resource_id = ? AND status IN ?", resourceID,
			[]string{models.BookingPending, models.BookingConfirmed}).
		Where("start_time >= ? AND start_time < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	occupied := make([]string, 0, len(bookings))
	for _, b := range bookings {
		// Format in the server location, matching how booking clocks are
		// derived on creation; the driver may return another offset.
		occupied = append(occupied, b.StartTime.In(time.Local).Format("15:04"))
	}
	return occupied, nil
}
