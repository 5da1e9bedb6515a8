package create_booking

import (
	"net/http"

	"github.com/m04kA/BookMe-Service/internal/api/handlers"
	"github.com/m04kA/BookMe-Service/internal/apperror"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := handlers.RequireJSON(r); err != nil {
		h.logger.Warn("POST /bookings - Unsupported content type: %v", err)
		handlers.RespondError(w, r, err)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondError(w, r, apperror.InvalidArgument(err, ""))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindValidationFailed, apperror.KindAlreadyExists:
			h.logger.Warn("POST /bookings - Booking rejected: email=%s, error=%v", req.UserEmail, err)
		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, error=%v", req.UserEmail, err)
		}
		handlers.RespondError(w, r, err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, email=%s",
		result.ID, result.UserEmail)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
