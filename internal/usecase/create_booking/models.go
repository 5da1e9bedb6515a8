package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookMe-Service/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserEmail       string     // Email пользователя
	StartTime       *time.Time // Время начала со смещением клиента
	DurationMinutes int        // Длительность в минутах
	Comments        *string    // Комментарий (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              uuid.UUID // ID созданного бронирования
	UserEmail       string
	StartTime       time.Time
	EndTime         time.Time // StartTime + DurationMinutes
	DurationMinutes int
	Status          string
	Comments        *string

	CreatedAt time.Time // Время создания (выставлено хранилищем)
	UpdatedAt time.Time // Время обновления (выставлено хранилищем)
}

// toDomainRequest конвертирует запрос в доменную модель для валидации
func (r *Request) toDomainRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		UserEmail:       r.UserEmail,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Comments:        r.Comments,
	}
}

// fromDomainBooking конвертирует сохраненное бронирование в ответ
func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		UserEmail:       b.UserEmail,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		Comments:        b.Comments,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
