package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Upcoming reports whether a booking in this status is still ahead.
func (s BookingStatus) Upcoming() bool {
	return s == StatusConfirmed
}

// TimeSlots are the only time labels a booking may use.
var TimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// ValidTimeSlot reports whether label is one of TimeSlots.
func ValidTimeSlot(label string) bool {
	for _, slot := range TimeSlots {
		if slot == label {
			return true
		}
	}
	return false
}

// Booking is a reserved slot. SalonName and ServiceName are snapshots taken
// at booking time; readers resolve current names from the catalog by id and
// fall back to the snapshot.
type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	SalonID     int    `gorm:"index;not null" json:"salonId"`
	ServiceID   int    `gorm:"not null" json:"serviceId"`
	SalonName   string `gorm:"not null" json:"salonName"`
	ServiceName string `gorm:"not null" json:"service"`

	Date string `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	Time string `gorm:"type:varchar(10);not null" json:"time"`

	CustomerName string `gorm:"not null" json:"customerName"`
	Phone        string `gorm:"not null" json:"phone"`
	Email        string `json:"email,omitempty"`

	Status BookingStatus `gorm:"type:varchar(20);index;not null;default:'Confirmed'" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = StatusConfirmed
	}
	return
}
