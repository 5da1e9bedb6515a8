package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/BookMe-Service/internal/apperror"
	bookingRepo "github.com/m04kA/BookMe-Service/internal/infra/storage/booking"
	"github.com/m04kA/BookMe-Service/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	validator   Validator
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	validator Validator,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		validator:   validator,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Отсутствие записи всегда возвращается как apperror.KindNotFound.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, apperror.NotFound("booking with id %s not found", id)
		}
		return nil, s.storageError("GetByID", err)
	}

	// Запись не отклоняется: проверка email только сигнализирует о битых данных
	if violations := s.validator.ValidateBooking(booking); len(violations) > 0 {
		s.logger.Warn("GetByID: stored booking id=%s fails validation: %s",
			id, apperror.JoinViolations(violations))
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetAll возвращает страницу бронирований.
// Некорректные параметры листинга возвращаются как apperror.KindInvalidArgument.
func (s *Service) GetAll(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetAll: pageNo=%d, pageSize=%d, direction=%s, orderBy=%s",
		req.PageNo, req.PageSize, req.Direction, req.OrderBy)

	query, violations := s.validator.ValidatePageQuery(req.PageNo, req.PageSize, req.Direction, req.OrderBy)
	if len(violations) > 0 {
		msg := apperror.JoinViolations(violations)
		s.logger.Warn("GetAll: invalid page query: %s", msg)
		return nil, apperror.InvalidArgument(nil, msg)
	}

	page, err := s.bookingRepo.FindAll(ctx, query)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrInvalidSort) {
			s.logger.Warn("GetAll: invalid sort: %v", err)
			return nil, apperror.InvalidArgument(err, "")
		}
		return nil, s.storageError("GetAll", err)
	}

	s.logger.Info("GetAll: fetched %d of %d bookings (page %d/%d)",
		len(page.Items), page.TotalElements, query.PageNo, page.TotalPages)
	return models.FromDomainPage(page), nil
}

// storageError классифицирует ошибку хранилища
func (s *Service) storageError(op string, err error) error {
	if errors.Is(err, bookingRepo.ErrStorageUnavailable) {
		s.logger.Error("%s: storage unavailable: %v", op, err)
		return apperror.Unavailable(err, "booking storage is temporarily unavailable")
	}

	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
