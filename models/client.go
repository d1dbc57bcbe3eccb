package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientProfile extends a User with role 'client'. Identity fields other
// than the name are optional and can be completed later.
type ClientProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	FirstName  string `gorm:"not null"`
	LastName   string `gorm:"not null"`
	Phone      string
	DocumentID string `gorm:"uniqueIndex;default:null"`
	BirthDate  *time.Time
	Address    string
	Notes      string

	User     User      `gorm:"foreignKey:UserID"`
	Bookings []Booking `gorm:"foreignKey:ClientID"`

	gorm.Model
}

func (p *ClientProfile) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
