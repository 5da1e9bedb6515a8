package create_booking

import (
	"context"

	"github.com/m04kA/BookMe-Service/internal/apperror"
	"github.com/m04kA/BookMe-Service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Validator интерфейс движка валидации
type Validator interface {
	ValidateRequest(req *domain.BookingRequest) []apperror.Violation
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
