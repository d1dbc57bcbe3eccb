// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reservahub-backend/models"
	"reservahub-backend/utils"
)

// GetProviderDashboard returns booking counts, this month's revenue from
// completed bookings and the most recent bookings for the provider.
func GetProviderDashboard(c *gin.Context) {
	provider, ok := providerFromContext(c)
	if !ok {
		return
	}

	var totalBookings int64
	if err := providerBookings(provider.ID).Model(&models.Booking{}).
		Count(&totalBookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	var pendingBookings int64
	if err := providerBookings(provider.ID).Model(&models.Booking{}).
		Where("bookings.status = ?", models.BookingPending).
		Count(&pendingBookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	now := time.Now()

	var upcomingConfirmed int64
	if err := providerBookings(provider.ID).Model(&models.Booking{}).
		Where("bookings.status = ? AND bookings.start_time > ?", models.BookingConfirmed, now).
		Count(&upcomingConfirmed).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var monthlyRevenue float64
	if err := providerBookings(provider.ID).Model(&models.Booking{}).
		Where("bookings.status = ? AND bookings.start_time >= ?", models.BookingCompleted, monthStart).
		Select("COALESCE(SUM(bookings.total_price), 0)").
		Scan(&monthlyRevenue).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	var recent []models.Booking
	if err := providerBookings(provider.ID).
		Preload("Client").Preload("Resource").
		Order("bookings.created_at desc").Limit(5).
		Find(&recent).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	type recentBooking struct {
		ID         string    `json:"id"`
		ClientName string    `json:"clientName"`
		Resource   string    `json:"resource"`
		StartTime  time.Time `json:"startTime"`
		Status     string    `json:"status"`
		TotalPrice float64   `json:"totalPrice"`
	}

	recentOut := make([]recentBooking, 0, len(recent))
	for _, b := range recent {
		recentOut = append(recentOut, recentBooking{
			ID:         b.ID.String(),
			ClientName: b.Client.FirstName + " " + b.Client.LastName,
			Resource:   b.Resource.Name,
			StartTime:  b.StartTime,
			Status:     b.Status,
			TotalPrice: b.TotalPrice,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBookings":     totalBookings,
		"pendingBookings":   pendingBookings,
		"upcomingConfirmed": upcomingConfirmed,
		"monthlyRevenue":    monthlyRevenue,
		"recentBookings":    recentOut,
	})
}
