// controllers/schedule.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"reservahub-backend/config"
	"reservahub-backend/models"
	"reservahub-backend/utils"
)

// CreateScheduleInput defines the expected JSON structure for creating a
// weekly schedule. DayOfWeek uses 0=Monday .. 6=Sunday.
type CreateScheduleInput struct {
	ResourceID   uuid.UUID `json:"resourceId" binding:"required"`
	DayOfWeek    int       `json:"dayOfWeek" binding:"min=0,max=6"`
	StartTime    string    `json:"startTime" binding:"required"`
	EndTime      string    `json:"endTime" binding:"required"`
	Price        float64   `json:"price" binding:"required,gt=0"`
	SlotDuration int       `json:"slotDuration" binding:"required,min=1"`
}

// BulkCreateScheduleInput creates the same window on several days at once
type BulkCreateScheduleInput struct {
	ResourceID   uuid.UUID `json:"resourceId" binding:"required"`
	DaysOfWeek   []int     `json:"daysOfWeek" binding:"required,min=1,dive,min=0,max=6"`
	StartTime    string    `json:"startTime" binding:"required"`
	EndTime      string    `json:"endTime" binding:"required"`
	Price        float64   `json:"price" binding:"required,gt=0"`
	SlotDuration int       `json:"slotDuration" binding:"required,min=1"`
}

// UpdateScheduleInput defines the expected JSON structure for updating a schedule
type UpdateScheduleInput struct {
	DayOfWeek    *int     `json:"dayOfWeek" binding:"omitempty,min=0,max=6"`
	StartTime    *string  `json:"startTime"`
	EndTime      *string  `json:"endTime"`
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	SlotDuration *int     `json:"slotDuration" binding:"omitempty,min=1"`
	IsActive     *bool    `json:"isActive"`
}

func validateWindow(start, end string) string {
	if !utils.ValidateClock(start) || !utils.ValidateClock(end) {
		return "Times must be in HH:MM format"
	}
	// Zero-padded HH:MM compares chronologically
	if start >= end {
		return "Start time must be before end time"
	}
	return ""
}

// CreateSchedule creates a weekly availability rule for a resource (owner only)
func CreateSchedule(c *gin.Context) {
	provider, ok := providerFromContext(c)
	if !ok {
		return
	}

	var input CreateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if msg := validateWindow(input.StartTime, input.EndTime); msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	if _, err := findOwnedResource(provider.ID, input.ResourceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Resource not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	schedule := models.Schedule{
		ResourceID:   input.ResourceID,
		DayOfWeek:    input.DayOfWeek,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Price:        input.Price,
		SlotDuration: input.SlotDuration,
		IsActive:     true,
	}

	if err := config.DB.Create(&schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create schedule")
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// BulkCreateSchedules creates the same window for several days in one
// atomic call. Either every schedule is created or none is.
func BulkCreateSchedules(c *gin.Context) {
	provider, ok := providerFromContext(c)
	if !ok {
		return
	}

	var input BulkCreateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if msg := validateWindow(input.StartTime, input.EndTime); msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	if _, err := findOwnedResource(provider.ID, input.ResourceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Resource not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	schedules := make([]models.Schedule, 0, len(input.DaysOfWeek))
	for _, day := range input.DaysOfWeek {
		schedule := models.Schedule{
			ResourceID:   input.ResourceID,
			DayOfWeek:    day,
			StartTime:    input.StartTime,
			EndTime:      input.EndTime,
			Price:        input.Price,
			SlotDuration: input.SlotDuration,
			IsActive:     true,
		}
		if err := tx.Create(&schedule).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create schedules")
			return
		}
		schedules = append(schedules, schedule)
	}

	tx.Commit()

	c.JSON(http.StatusCreated, schedules)
}

// GetSchedulesByResource lists a resource's active schedules ordered by day
// and start time (public; clients need this to pick a slot)
func GetSchedulesByResource(c *gin.Context) {
	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	var schedules []models.Schedule
	if err := config.DB.Where("resource_id = ? AND is_active = ?", resourceUUID, true).
		Order("day_of_week, start_time").Find(&schedules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedules")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// findOwnedSchedule returns the schedule only if its resource belongs to
// one of the provider's services.
func findOwnedSchedule(providerID, scheduleID uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	err := config.DB.
		Joins("JOIN resources ON resources.id = schedules.resource_id").
		Joins("JOIN services ON services.id = resources.service_id").
		Where("schedules.id = ? AND services.provider_id = ?", scheduleID, providerID).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// UpdateSchedule updates an existing schedule (owner only)
func UpdateSchedule(c *gin.Context) {
	provider, ok := providerFromContext(c)
	if !ok {
		return
	}

	scheduleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid schedule ID format")
		return
	}

	var input UpdateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	schedule, err := findOwnedSchedule(provider.ID, scheduleUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.DayOfWeek != nil {
		schedule.DayOfWeek = *input.DayOfWeek
	}
	if input.StartTime != nil {
		schedule.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		schedule.EndTime = *input.EndTime
	}
	if msg := validateWindow(schedule.StartTime, schedule.EndTime); msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}
	if input.Price != nil {
		schedule.Price = *input.Price
	}
	if input.SlotDuration != nil {
		schedule.SlotDuration = *input.SlotDuration
	}
	if input.IsActive != nil {
		schedule.IsActive = *input.IsActive
	}

	if err := config.DB.Save(schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update schedule")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule deactivates a schedule (owner only)
func DeleteSchedule(c *gin.Context) {
	provider, ok := providerFromContext(c)
	if !ok {
		return
	}

	scheduleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid schedule ID format")
		return
	}

	schedule, err := findOwnedSchedule(provider.ID, scheduleUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	schedule.IsActive = false
	if err := config.DB.Save(schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deactivated successfully"})
}
