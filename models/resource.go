package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource is a concrete bookable unit belonging to a service
// (e.g. "Court 1", "Room A").
type Resource struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Capacity    *int
	Features    string `gorm:"type:text"` // e.g. "covered, changing rooms, parking"
	SortOrder   int    `gorm:"default:0"`
	IsActive    bool   `gorm:"default:true"`

	Service   Service    `gorm:"foreignKey:ServiceID"`
	Schedules []Schedule `gorm:"foreignKey:ResourceID"`
	Bookings  []Booking  `gorm:"foreignKey:ResourceID"`

	gorm.Model
}

func (r *Resource) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
