package domain

import (
	"fmt"
	"strings"
)

// SortDirection represents the ordering of a paginated listing
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection converts "asc"/"desc" in any case into a SortDirection
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(strings.ToUpper(strings.TrimSpace(s))) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", fmt.Errorf("unknown sort direction %q", s)
	}
}

// SortField is the API name of a sortable booking attribute
type SortField string

const (
	SortByID              SortField = "id"
	SortByUserEmail       SortField = "userEmail"
	SortByStartTime       SortField = "startTime"
	SortByDurationMinutes SortField = "durationInMinutes"
	SortByStatus          SortField = "status"
	SortByCreatedAt       SortField = "createdAt"
	SortByUpdatedAt       SortField = "updatedAt"
)

// sortColumns сопоставляет API-имя поля с колонкой таблицы bookings
var sortColumns = map[SortField]string{
	SortByID:              "id",
	SortByUserEmail:       "user_email",
	SortByStartTime:       "start_time",
	SortByDurationMinutes: "duration_minutes",
	SortByStatus:          "status",
	SortByCreatedAt:       "created_at",
	SortByUpdatedAt:       "updated_at",
}

// Column returns the storage column for the field and whether the field is sortable
func (f SortField) Column() (string, bool) {
	col, ok := sortColumns[f]
	return col, ok
}

// SortableFields returns the API names accepted by orderBy
func SortableFields() []SortField {
	return []SortField{
		SortByID,
		SortByUserEmail,
		SortByStartTime,
		SortByDurationMinutes,
		SortByStatus,
		SortByCreatedAt,
		SortByUpdatedAt,
	}
}

// PageQuery describes one page of a sorted listing
type PageQuery struct {
	PageNo    int
	PageSize  int
	Direction SortDirection
	OrderBy   SortField
}

// Offset returns the number of rows to skip
func (q PageQuery) Offset() int {
	return q.PageNo * q.PageSize
}

// BookingPage is one page of bookings plus totals over the whole listing
type BookingPage struct {
	Items         []*Booking
	TotalElements int64
	TotalPages    int
}

// NewBookingPage builds a page and computes TotalPages = ceil(total / pageSize)
func NewBookingPage(items []*Booking, totalElements int64, pageSize int) *BookingPage {
	if items == nil {
		items = make([]*Booking, 0)
	}
	return &BookingPage{
		Items:         items,
		TotalElements: totalElements,
		TotalPages:    TotalPages(totalElements, pageSize),
	}
}

// TotalPages returns ceil(totalElements / pageSize), 0 for a non-positive page size
func TotalPages(totalElements int64, pageSize int) int {
	if pageSize <= 0 || totalElements <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((totalElements + size - 1) / size)
}
