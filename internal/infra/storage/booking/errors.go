package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateBooking возвращается при нарушении уникальности (например, повторный id)
	ErrDuplicateBooking = errors.New("booking.repository: booking already exists")

	// ErrStorageUnavailable возвращается, когда БД недоступна
	ErrStorageUnavailable = errors.New("booking.repository: storage unavailable")

	// ErrInvalidSort возвращается при попытке сортировки по неизвестному полю
	ErrInvalidSort = errors.New("booking.repository: invalid sort field")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
