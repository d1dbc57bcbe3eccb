package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is a recurring weekly availability rule for one resource:
// on DayOfWeek between StartTime and EndTime the resource can be booked
// in SlotDuration-minute slots at Price per slot.
//
// DayOfWeek uses 0=Monday .. 6=Sunday. Times are zero-padded "HH:MM"
// strings so lexicographic order matches chronological order.
type Schedule struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ResourceID uuid.UUID `gorm:"type:uuid;index;not null"`

	DayOfWeek    int     `gorm:"not null"`
	StartTime    string  `gorm:"type:varchar(5);not null"`
	EndTime      string  `gorm:"type:varchar(5);not null"`
	Price        float64 `gorm:"type:decimal(10,2);not null"`
	SlotDuration int     `gorm:"not null;default:60"` // minutes

	IsActive bool `gorm:"default:true"`

	gorm.Model
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
