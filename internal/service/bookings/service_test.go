package bookings

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookMe-Service/internal/apperror"
	"github.com/m04kA/BookMe-Service/internal/domain"
	bookingRepo "github.com/m04kA/BookMe-Service/internal/infra/storage/booking"
	"github.com/m04kA/BookMe-Service/internal/service/bookings/models"
	"github.com/m04kA/BookMe-Service/internal/validation"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context, query domain.PageQuery) (*domain.BookingPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingPage), args.Error(1)
}

// recordingLogger запоминает предупреждения
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {}

func newTestService(repo BookingRepository, log Logger) *Service {
	return NewService(repo, validation.NewEngine(nil, 100), log)
}

func testBooking(email string) *domain.Booking {
	start := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:              uuid.New(),
		UserEmail:       email,
		StartTime:       start,
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
		CreatedAt:       start.Add(-48 * time.Hour),
		UpdatedAt:       start.Add(-24 * time.Hour),
	}
}

func TestService_GetByID_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	log := &recordingLogger{}
	booking := testBooking("bob@example.com")
	repo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	resp, err := newTestService(repo, log).GetByID(context.Background(), booking.ID)

	require.NoError(t, err)
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 30, resp.DurationInMinutes)
	assert.True(t, resp.EndTime.Equal(booking.StartTime.Add(30*time.Minute)))
	assert.Empty(t, log.warnings)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := newTestService(repo, &recordingLogger{}).GetByID(context.Background(), id)

	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, fmt.Sprintf("booking with id %s not found", id), apperror.Message(err))
}

func TestService_GetByID_StoredEmailInvalidIsOnlyLogged(t *testing.T) {
	repo := new(MockBookingRepository)
	log := &recordingLogger{}
	booking := testBooking("broken@")
	repo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	resp, err := newTestService(repo, log).GetByID(context.Background(), booking.ID)

	require.NoError(t, err)
	assert.Equal(t, "broken@", resp.UserEmail)
	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "invalid email format")
}

func TestService_GetByID_StorageErrors(t *testing.T) {
	repo := new(MockBookingRepository)
	unavailableID, brokenID := uuid.New(), uuid.New()
	repo.On("FindByID", mock.Anything, unavailableID).
		Return(nil, fmt.Errorf("%w: FindByID - scan booking: bad conn", bookingRepo.ErrStorageUnavailable))
	repo.On("FindByID", mock.Anything, brokenID).
		Return(nil, errors.New("unexpected"))

	svc := newTestService(repo, &recordingLogger{})

	_, err := svc.GetByID(context.Background(), unavailableID)
	assert.Equal(t, apperror.KindUnavailable, apperror.KindOf(err))

	_, err = svc.GetByID(context.Background(), brokenID)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, apperror.KindUnhandled, apperror.KindOf(err))
}

func TestService_GetAll_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	items := []*domain.Booking{testBooking("a@example.com"), testBooking("b@example.com")}
	query := domain.PageQuery{PageNo: 1, PageSize: 2, Direction: domain.SortDesc, OrderBy: domain.SortByCreatedAt}
	repo.On("FindAll", mock.Anything, query).Return(domain.NewBookingPage(items, 5, 2), nil)

	resp, err := newTestService(repo, &recordingLogger{}).GetAll(context.Background(), &models.ListBookingsRequest{
		PageNo:    1,
		PageSize:  2,
		Direction: "desc",
		OrderBy:   "createdAt",
	})

	require.NoError(t, err)
	assert.Len(t, resp.Content, 2)
	assert.Equal(t, int64(5), resp.TotalElements)
	assert.Equal(t, 3, resp.TotalPages)
	repo.AssertExpectations(t)
}

func TestService_GetAll_InvalidQuery(t *testing.T) {
	repo := new(MockBookingRepository)

	_, err := newTestService(repo, &recordingLogger{}).GetAll(context.Background(), &models.ListBookingsRequest{
		PageNo:    0,
		PageSize:  500,
		Direction: "ASC",
		OrderBy:   "nope",
	})

	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
	assert.Contains(t, apperror.Message(err), "pageSize: must be between 1 and 100")
	assert.Contains(t, apperror.Message(err), "orderBy: must be one of")
	repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

func TestService_GetAll_EmptyPage(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("FindAll", mock.Anything, mock.Anything).Return(domain.NewBookingPage(nil, 0, 10), nil)

	resp, err := newTestService(repo, &recordingLogger{}).GetAll(context.Background(), &models.ListBookingsRequest{
		PageSize:  10,
		Direction: "ASC",
		OrderBy:   "startTime",
	})

	require.NoError(t, err)
	assert.NotNil(t, resp.Content)
	assert.Empty(t, resp.Content)
	assert.Equal(t, 0, resp.TotalPages)
}

func TestService_GetAll_StorageUnavailable(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("FindAll", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: count - scan total: timeout", bookingRepo.ErrStorageUnavailable))

	_, err := newTestService(repo, &recordingLogger{}).GetAll(context.Background(), &models.ListBookingsRequest{
		PageSize:  10,
		Direction: "ASC",
		OrderBy:   "startTime",
	})

	assert.Equal(t, apperror.KindUnavailable, apperror.KindOf(err))
}
