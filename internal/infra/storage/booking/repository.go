package booking

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/BookMe-Service/internal/domain"
	"github.com/m04kA/BookMe-Service/pkg/psqlbuilder"
)

const tableBookings = "bookings"

// Коды ошибок PostgreSQL, которые различает репозиторий
const (
	pqUniqueViolation           pq.ErrorCode  = "23505"
	pqClassConnection           pq.ErrorClass = "08"
	pqClassOperatorIntervention pq.ErrorClass = "57"
)

// bookingColumns порядок колонок совпадает с scanBooking
var bookingColumns = []string{
	"id",
	"user_email",
	"start_time",
	"duration_minutes",
	"status",
	"comments",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет новое бронирование.
// Если ID не задан, генерирует UUID. created_at и updated_at выставляет БД,
// значения возвращаются через RETURNING и записываются в переданную структуру.
func (r *Repository) Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"id",
			"user_email",
			"start_time",
			"duration_minutes",
			"status",
			"comments",
		).
		Values(
			booking.ID,
			booking.UserEmail,
			booking.StartTime,
			booking.DurationMinutes,
			booking.Status,
			booking.Comments,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if classified := classify(err); classified != nil {
			return nil, fmt.Errorf("%w: Save - execute insert: %v", classified, err)
		}
		return nil, fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// FindByID получает бронирование по ID
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		if classified := classify(err); classified != nil {
			return nil, fmt.Errorf("%w: FindByID - scan booking: %v", classified, err)
		}
		return nil, fmt.Errorf("%w: FindByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// FindAll возвращает страницу бронирований, отсортированных по query.OrderBy.
// Для стабильного порядка внутри одинаковых значений добавляется сортировка по id.
func (r *Repository) FindAll(ctx context.Context, query domain.PageQuery) (*domain.BookingPage, error) {
	column, ok := query.OrderBy.Column()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSort, query.OrderBy)
	}

	direction := domain.SortAsc
	if query.Direction == domain.SortDesc {
		direction = domain.SortDesc
	}

	total, err := r.count(ctx)
	if err != nil {
		return nil, err
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		OrderBy(fmt.Sprintf("%s %s", column, direction)).
		Limit(uint64(query.PageSize)).
		Offset(uint64(query.Offset()))

	if column != "id" {
		selectBuilder = selectBuilder.OrderBy("id ASC")
	}

	sqlQuery, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		if classified := classify(err); classified != nil {
			return nil, fmt.Errorf("%w: FindAll - execute query: %v", classified, err)
		}
		return nil, fmt.Errorf("%w: FindAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	return domain.NewBookingPage(bookings, total, query.PageSize), nil
}

// count возвращает общее количество бронирований
func (r *Repository) count(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableBookings).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: count - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		if classified := classify(err); classified != nil {
			return 0, fmt.Errorf("%w: count - scan total: %v", classified, err)
		}
		return 0, fmt.Errorf("%w: count - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var status string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserEmail,
		&booking.StartTime,
		&booking.DurationMinutes,
		&status,
		&booking.Comments,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Status, err = domain.ParseBookingStatus(status)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// classify сопоставляет ошибку драйвера с ошибкой репозитория, nil - если не распознана
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == pqUniqueViolation:
			return ErrDuplicateBooking
		case pqErr.Code.Class() == pqClassConnection,
			pqErr.Code.Class() == pqClassOperatorIntervention:
			return ErrStorageUnavailable
		}
		return nil
	}

	if errors.Is(err, driver.ErrBadConn) {
		return ErrStorageUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrStorageUnavailable
	}

	return nil
}
