package domain

// Default pagination values
const (
	DefaultPageNo    = 0
	DefaultPageSize  = 10
	MaxPageSize      = 100
	DefaultDirection = SortAsc
	DefaultOrderBy   = SortByStartTime
)

// Business validation constants
const (
	MaxCommentsLength = 500
)

// AllStatuses список всех статусов жизненного цикла бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}
