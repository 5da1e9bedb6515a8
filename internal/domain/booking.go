package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a scheduled reservation in the system
type Booking struct {
	ID              uuid.UUID
	UserEmail       string
	StartTime       time.Time // offset клиента сохраняется как есть
	DurationMinutes int
	Status          BookingStatus
	Comments        *string

	// Заполняются хранилищем при записи
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the moment the booking ends
func (b *Booking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// ParseBookingStatus converts a string into a known BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllStatuses {
		if status == known {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}
