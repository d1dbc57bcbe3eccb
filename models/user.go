package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reservahub-backend/utils"
)

const (
	RoleClient   = "client"
	RoleProvider = "provider"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Username string    `gorm:"not null"`

	Role string `gorm:"type:varchar(20);not null"` // 'client' or 'provider'

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
