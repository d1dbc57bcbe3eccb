// services/reminder.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"reservahub-backend/models"
	"reservahub-backend/utils"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

// StartScheduler registers the daily reminder job. SMS delivery needs the
// Twilio env vars; without them the scheduler stays off.
func (s *ReminderService) StartScheduler() {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" || s.from == "" {
		log.Println("Twilio not configured, booking reminders disabled")
		return
	}

	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendUpcomingReminders()
	})

	c.Start()
	log.Println("Booking reminder scheduler started")
}

// SendUpcomingReminders messages every client with a confirmed booking
// starting within the next 24 hours that has not been reminded yet.
func (s *ReminderService) SendUpcomingReminders() {
	log.Println("Starting booking reminder processing...")

	now := time.Now()
	windowEnd := now.Add(24 * time.Hour)

	var bookings []models.Booking
	if err := s.db.Preload("Client").Preload("Resource").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.BookingConfirmed, now, windowEnd).
		Find(&bookings).Error; err != nil {
		log.Printf("Failed to fetch upcoming bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		if s.alreadyReminded(booking) {
			continue
		}
		s.sendReminder(booking)
	}

	log.Println("Booking reminder processing completed")
}

func (s *ReminderService) alreadyReminded(booking models.Booking) bool {
	var count int64
	s.db.Model(&models.NotificationLog{}).
		Where("booking_id = ? AND status = ?", booking.ID, "sent").
		Count(&count)
	return count > 0
}

func (s *ReminderService) sendReminder(booking models.Booking) {
	phone := booking.Client.Phone
	if phone == "" || !utils.ValidatePhone(phone) {
		log.Printf("Booking %s: client has no usable phone, skipping reminder", booking.ID)
		return
	}

	message := fmt.Sprintf(
		"Hi %s, reminder: your booking for %s starts at %s. See you there!",
		booking.Client.FirstName,
		booking.Resource.Name,
		booking.StartTime.Format("Mon 02 Jan 15:04"),
	)

	logEntry := models.NotificationLog{
		BookingID: booking.ID,
		ClientID:  booking.ClientID,
		Message:   message,
		Channel:   "sms",
		SentAt:    time.Now(),
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Booking %s: failed to send reminder: %v", booking.ID, err)
		logEntry.Status = "failed"
		logEntry.ErrorMessage = err.Error()
	} else {
		logEntry.Status = "sent"
	}

	if err := s.db.Create(&logEntry).Error; err != nil {
		log.Printf("Booking %s: failed to record notification log: %v", booking.ID, err)
	}
}
