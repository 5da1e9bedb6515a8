package create_booking

import (
	"time"

	"github.com/m04kA/BookMe-Service/internal/service/bookings/models"
	createBooking "github.com/m04kA/BookMe-Service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserEmail         string     `json:"userEmail"`
	StartTime         *time.Time `json:"startTime"` // RFC 3339 со смещением, "2030-01-15T10:00:00+02:00"
	DurationInMinutes int        `json:"durationInMinutes"`
	Comments          *string    `json:"comments,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		UserEmail:       r.UserEmail,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationInMinutes,
		Comments:        r.Comments,
	}
}

// FromUseCaseResponse конвертирует ответ use case в тот же ресурс, что отдают GET-эндпоинты
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return &models.BookingResponse{
		ID:                resp.ID,
		UserEmail:         resp.UserEmail,
		StartTime:         resp.StartTime,
		EndTime:           resp.EndTime,
		DurationInMinutes: resp.DurationMinutes,
		Status:            resp.Status,
		Comments:          resp.Comments,
		CreatedAt:         resp.CreatedAt,
		UpdatedAt:         resp.UpdatedAt,
	}
}
