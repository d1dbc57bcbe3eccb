package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProviderProfile extends a User with role 'provider'.
type ProviderProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	FirstName     string `gorm:"not null"`
	LastName      string `gorm:"not null"`
	Specialty     string `gorm:"not null"`
	LicenseNumber string `gorm:"uniqueIndex;default:null"`
	Phone         string
	Bio           string `gorm:"type:text"`
	IsAvailable   bool   `gorm:"default:true"`

	User     User      `gorm:"foreignKey:UserID"`
	Services []Service `gorm:"foreignKey:ProviderID"`

	gorm.Model
}

func (p *ProviderProfile) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
