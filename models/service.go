package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is an offering type owned by a provider (e.g. "5-a-side football",
// "Tennis"). Bookable units hang off it as resources.
type Service struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ProviderID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"index"`
	IsActive    bool   `gorm:"default:true"`

	Resources []Resource `gorm:"foreignKey:ServiceID"`

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
