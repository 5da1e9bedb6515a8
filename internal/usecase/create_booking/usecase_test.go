package create_booking

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
	"github.com/m04kA/BookMe-Service/internal/validation"
	"github.com/m04kA/BookMe-Service/pkg/logger"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2030, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo BookingRepository) *UseCase {
	return NewUseCase(repo, validation.NewEngine(fixedClock{now: testNow}, 100), logger.NewNop())
}

func validRequest() *Request {
	start := time.Date(2030, 1, 16, 10, 0, 0, 0, time.FixedZone("+02:00", 2*60*60))
	comments := "first visit"
	return &Request{
		UserEmail:       "alice@example.com",
		StartTime:       &start,
		DurationMinutes: 45,
		Comments:        &comments,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	req := validRequest()
	createdAt := testNow.Add(time.Second)

	saved := &domain.Booking{
		ID:              uuid.New(),
		UserEmail:       req.UserEmail,
		StartTime:       *req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Status:          domain.StatusPending,
		Comments:        req.Comments,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}

	repo.On("Save", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserEmail == "alice@example.com" &&
			b.DurationMinutes == 45 &&
			b.Status == domain.StatusPending &&
			b.ID == uuid.Nil &&
			b.CreatedAt.IsZero()
	})).Return(saved, nil)

	resp, err := newTestUseCase(repo).Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, saved.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.True(t, resp.StartTime.Equal(*req.StartTime))
	assert.True(t, resp.EndTime.Equal(req.StartTime.Add(45*time.Minute)))
	assert.Equal(t, createdAt, resp.CreatedAt)
	assert.Equal(t, "first visit", *resp.Comments)
	repo.AssertExpectations(t)
}

func TestUseCase_Execute_ValidationFailed(t *testing.T) {
	repo := new(MockBookingRepository)

	req := validRequest()
	req.UserEmail = "invalid"
	req.DurationMinutes = 0

	_, err := newTestUseCase(repo).Execute(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
	assert.Equal(t, "userEmail: invalid email format, durationInMinutes: duration must be positive", apperror.Message(err))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_NilRequest(t *testing.T) {
	repo := new(MockBookingRepository)

	_, err := newTestUseCase(repo).Execute(context.Background(), nil)

	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
	assert.Equal(t, apperror.InvalidRequestArgument, apperror.Message(err))
}

func TestUseCase_Execute_StorageErrors(t *testing.T) {
	cases := []struct {
		name     string
		repoErr  error
		wantKind apperror.Kind
	}{
		{
			name:     "duplicate",
			repoErr:  fmt.Errorf("%w: Save - execute insert: unique violation", bookingRepo.ErrDuplicateBooking),
			wantKind: apperror.KindAlreadyExists,
		},
		{
			name:     "unavailable",
			repoErr:  fmt.Errorf("%w: Save - execute insert: connection refused", bookingRepo.ErrStorageUnavailable),
			wantKind: apperror.KindUnavailable,
		},
		{
			name:     "unknown",
			repoErr:  errors.New("something odd"),
			wantKind: apperror.KindUnhandled,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			repo.On("Save", mock.Anything, mock.Anything).Return(nil, tc.repoErr)

			_, err := newTestUseCase(repo).Execute(context.Background(), validRequest())

			require.Error(t, err)
			assert.Equal(t, tc.wantKind, apperror.KindOf(err))
		})
	}
}

func TestUseCase_Execute_UnknownErrorIsInternal(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))

	_, err := newTestUseCase(repo).Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "disk full")
}
