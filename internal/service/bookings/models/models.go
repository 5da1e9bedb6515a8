package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookMe-Service/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение страницы бронирований
type ListBookingsRequest struct {
	PageNo    int    `json:"pageNo"`
	PageSize  int    `json:"pageSize"`
	Direction string `json:"direction"` // ASC или DESC, регистр не важен
	OrderBy   string `json:"orderBy"`   // API-имя поля, см. domain.SortableFields
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                uuid.UUID `json:"id"`
	UserEmail         string    `json:"userEmail"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	DurationInMinutes int       `json:"durationInMinutes"`
	Status            string    `json:"status"`
	Comments          *string   `json:"comments,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// BookingListResponse страница бронирований
type BookingListResponse struct {
	Content       []BookingResponse `json:"content"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                b.ID,
		UserEmail:         b.UserEmail,
		StartTime:         b.StartTime,
		EndTime:           b.EndTime(),
		DurationInMinutes: b.DurationMinutes,
		Status:            string(b.Status),
		Comments:          b.Comments,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromDomainPage конвертирует страницу domain моделей в DTO
func FromDomainPage(page *domain.BookingPage) *BookingListResponse {
	if page == nil {
		return &BookingListResponse{
			Content: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Content:       make([]BookingResponse, 0, len(page.Items)),
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}

	for _, booking := range page.Items {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Content = append(resp.Content, *bookingResp)
		}
	}

	return resp
}
