package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BookMe-Service/internal/apperror"
	"github.com/m04kA/BookMe-Service/internal/domain"
	bookingRepo "github.com/m04kA/BookMe-Service/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	validator   Validator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	validator Validator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		validator:   validator,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Нарушения правил возвращаются одной ошибкой apperror.KindValidationFailed,
// ошибки хранилища - как AlreadyExists, Unavailable или внутренняя ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, apperror.InvalidArgument(nil, "")
	}

	uc.logger.Info("CreateBooking: email=%s, startTime=%v, duration=%d",
		req.UserEmail, req.StartTime, req.DurationMinutes)

	// 1. Валидация по бизнес-правилам
	if violations := uc.validator.ValidateRequest(req.toDomainRequest()); len(violations) > 0 {
		err := apperror.Validation(violations...)
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Создаем бронирование, id и временные метки выставит хранилище
	booking := &domain.Booking{
		UserEmail:       req.UserEmail,
		StartTime:       *req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Status:          domain.StatusPending,
		Comments:        req.Comments,
	}

	// 3. Сохраняем
	created, err := uc.bookingRepo.Save(ctx, booking)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrDuplicateBooking):
			uc.logger.Warn("CreateBooking: duplicate booking: %v", err)
			return nil, apperror.AlreadyExists("booking already exists")

		case errors.Is(err, bookingRepo.ErrStorageUnavailable):
			uc.logger.Error("CreateBooking: storage unavailable: %v", err)
			return nil, apperror.Unavailable(err, "booking storage is temporarily unavailable")

		default:
			uc.logger.Error("CreateBooking: failed to save booking: %v", err)
			return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	return fromDomainBooking(created), nil
}
