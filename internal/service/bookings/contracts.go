package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BookMe-Service/internal/apperror"
	"github.com/m04kA/BookMe-Service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	FindAll(ctx context.Context, query domain.PageQuery) (*domain.BookingPage, error)
}

// Validator интерфейс движка валидации
type Validator interface {
	ValidateBooking(b *domain.Booking) []apperror.Violation
	ValidatePageQuery(pageNo, pageSize int, direction, orderBy string) (domain.PageQuery, []apperror.Violation)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
