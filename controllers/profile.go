// controllers/profile.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reservahub-backend/config"
	"reservahub-backend/utils"
)

// UpdateClientProfileInput defines the expected JSON structure for updating
// a client profile
type UpdateClientProfileInput struct {
	FirstName  *string    `json:"firstName"`
	LastName   *string    `json:"lastName"`
	Phone      *string    `json:"phone"`
	DocumentID *string    `json:"documentId"`
	BirthDate  *time.Time `json:"birthDate"`
	Address    *string    `json:"address"`
	Notes      *string    `json:"notes"`
}

// UpdateProviderProfileInput defines the expected JSON structure for
// updating a provider profile
type UpdateProviderProfileInput struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Specialty     *string `json:"specialty"`
	LicenseNumber *string `json:"licenseNumber"`
	Phone         *string `json:"phone"`
	Bio           *string `json:"bio"`
	IsAvailable   *bool   `json:"isAvailable"`
}

// UpdateClientProfile updates the authenticated client's profile
func UpdateClientProfile(c *gin.Context) {
	profile, ok := clientFromContext(c)
	if !ok {
		return
	}

	var input UpdateClientProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		profile.Phone = *input.Phone
	}
	if input.DocumentID != nil {
		profile.DocumentID = *input.DocumentID
	}
	if input.BirthDate != nil {
		profile.BirthDate = input.BirthDate
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.Notes != nil {
		profile.Notes = *input.Notes
	}

	if err := config.DB.Save(profile).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProviderProfile updates the authenticated provider's profile
func UpdateProviderProfile(c *gin.Context) {
	profile, ok := providerFromContext(c)
	if !ok {
		return
	}

	var input UpdateProviderProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.Specialty != nil {
		if *input.Specialty == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Specialty cannot be empty")
			return
		}
		profile.Specialty = *input.Specialty
	}
	if input.LicenseNumber != nil {
		profile.LicenseNumber = *input.LicenseNumber
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		profile.Phone = *input.Phone
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.IsAvailable != nil {
		profile.IsAvailable = *input.IsAvailable
	}

	if err := config.DB.Save(profile).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
