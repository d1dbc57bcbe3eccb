package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking lifecycle states. Cancelled, completed and no_show are terminal.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
	BookingNoShow    = "no_show"
)

// Payment methods accepted when recording a deposit or balance payment.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)

type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ResourceID uuid.UUID `gorm:"type:uuid;index;not null"`

	StartTime       time.Time `gorm:"index;not null"`
	EndTime         time.Time `gorm:"not null"`
	DurationMinutes int       `gorm:"not null"`

	Status string `gorm:"type:varchar(20);not null;default:'pending';index"`

	// Payment: Deposit accumulates recorded payments; PendingBalance and
	// FullyPaid are always derived from TotalPrice and Deposit.
	TotalPrice       float64 `gorm:"type:decimal(10,2);not null"`
	Deposit          float64 `gorm:"type:decimal(10,2);default:0.0"`
	PendingBalance   float64 `gorm:"type:decimal(10,2)"`
	PaymentMethod    string  `gorm:"type:varchar(20)"`
	FullyPaid        bool    `gorm:"default:false"`
	PaymentConfirmed bool    `gorm:"default:false"`
	PaymentNotes     string  `gorm:"type:text"`

	ClientNotes   string `gorm:"type:text"`
	InternalNotes string `gorm:"type:text"` // visible to the provider only

	CancelReason string
	CancelledAt  *time.Time

	Client   ClientProfile `gorm:"foreignKey:ClientID"`
	Resource Resource      `gorm:"foreignKey:ResourceID"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	b.ID = uuid.New()
	return
}
