package domain

import "time"

// BookingRequest is a candidate booking received from a client.
// It lives only for the duration of one create call.
type BookingRequest struct {
	UserEmail       string
	StartTime       *time.Time // nil - поле не передано
	DurationMinutes int
	Comments        *string
}
