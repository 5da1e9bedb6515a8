package get_booking

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/BookMe-Service/internal/api/handlers"
	"github.com/m04kA/BookMe-Service/internal/apperror"
)

const msgInvalidBookingID = "Invalid booking id '%s'"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingIDStr := mux.Vars(r)["bookingId"]

	bookingID, err := uuid.Parse(bookingIDStr)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondError(w, r, apperror.InvalidArgumentf(err, msgInvalidBookingID, bookingIDStr))
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
		} else {
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
		}
		handlers.RespondError(w, r, err)
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
