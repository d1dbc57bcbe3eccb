// controllers/resource.go
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

// CreateResourceInput defines the expected JSON structure for creating a resource
type CreateResourceInput struct {
	ServiceID   uuid.UUID `json:"serviceId" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Capacity    *int      `json:"capacity"`
	Features    string    `json:"features"`
	SortOrder   int       `json:"sortOrder"`
}

// UpdateResourceInput defines the expected JSON structure for updating a resource
type UpdateResourceInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity"`
	Features    *string `json:"features"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

// CreateResource creates a bookable resource under one of the provider's services
func CreateResource(c *gin.Context) {
	provider, ok := providerFromContext(c)
	if !ok {
		return
	}

	var input CreateResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// The target service must belong to the provider
	var service models.Service
	if err := config.DB.Where("provider_id = ? AND id = ?", provider.ID, input.ServiceID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	resource := models.Resource{
		ServiceID:   input.ServiceID,
		Name:        input.Name,
		Description: input.Description,
		Capacity:    input.Capacity,
		Features:    input.Features,
		SortOrder:   input.SortOrder,
		IsActive:    true,
	}

	if err := config.DB.Create(&resource).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create resource")
		return
	}

	c.JSON(http.StatusCreated, resource)
}

// GetResourcesByService lists a service's active resources (public)
func GetResourcesByService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var resources []models.Resource
	if err := config.DB.Where("service_id = ? AND is_active = ?", serviceUUID, true).
		Order("sort_order").Find(&resources).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve resources")
		return
	}

	c.JSON(http.StatusOK, resources)
}

// GetResource retrieves a specific resource by ID (public)
func GetResource(c *gin.Context) {
	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	var resource models.Resource
	if err := config.DB.First(&resource, "id = ?", resourceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Resource not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, resource)
}

// UpdateResource updates an existing resource (owner only)
func UpdateResource(c *gin.Context) {
	provider, ok := providerFromContext(c)
	if !ok {
		return
	}

	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	var input UpdateResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	resource, err := findOwnedResource(provider.ID, resourceUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Resource not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		resource.Name = *input.Name
	}
	if input.Description != nil {
		resource.Description = *input.Description
	}
	if input.Capacity != nil {
		resource.Capacity = input.Capacity
	}
	if input.Features != nil {
		resource.Features = *input.Features
	}
	if input.SortOrder != nil {
		resource.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		resource.IsActive = *input.IsActive
	}

	if err := config.DB.Save(resource).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update resource")
		return
	}

	c.JSON(http.StatusOK, resource)
}

// DeleteResource deactivates a resource (owner only). Bookings keep
// referencing it, so this is a deactivation rather than a row delete.
func DeleteResource(c *gin.Context) {
	provider, ok := providerFromContext(c)
	if !ok {
		return
	}

	resourceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid resource ID format")
		return
	}

	resource, err := findOwnedResource(provider.ID, resourceUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Resource not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	resource.IsActive = false
	if err := config.DB.Save(resource).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete resource")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resource deactivated successfully"})
}
