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

// userIDFromContext pulls the authenticated user id set by the auth
// middleware. Writes the error response itself when missing or malformed.
func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

// clientFromContext loads the client profile of the authenticated user
func clientFromContext(c *gin.Context) (*models.ClientProfile, bool) {
	id, ok := userIDFromContext(c)
	if !ok {
		return nil, false
	}

	var profile models.ClientProfile
	if err := config.DB.Where("user_id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client profile not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &profile, true
}

// providerFromContext loads the provider profile of the authenticated user
func providerFromContext(c *gin.Context) (*models.ProviderProfile, bool) {
	id, ok := userIDFromContext(c)
	if !ok {
		return nil, false
	}

	var profile models.ProviderProfile
	if err := config.DB.Where("user_id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Provider profile not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &profile, true
}

// findOwnedResource returns the resource only if it belongs to one of the
// provider's services.
func findOwnedResource(providerID, resourceID uuid.UUID) (*models.Resource, error) {
	var resource models.Resource
	err := config.DB.
		Joins("JOIN services ON services.id = resources.service_id").
		Where("resources.id = ? AND services.provider_id = ?", resourceID, providerID).
		First(&resource).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// providerBookings scopes a booking query to the provider's resources
func providerBookings(providerID uuid.UUID) *gorm.DB {
	return config.DB.
		Joins("JOIN resources ON resources.id = bookings.resource_id").
		Joins("JOIN services ON services.id = resources.service_id").
		Where("services.provider_id = ?", providerID)
}
