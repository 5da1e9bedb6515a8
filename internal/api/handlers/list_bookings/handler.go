package list_bookings

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/BookMe-Service/internal/api/handlers"
	"github.com/m04kA/BookMe-Service/internal/apperror"
	"github.com/m04kA/BookMe-Service/internal/domain"
	"github.com/m04kA/BookMe-Service/internal/service/bookings/models"
)

const msgInvalidNumber = "%s: must be an integer, got '%s'"

type Handler struct {
	service         BookingService
	logger          Logger
	defaultPageSize int
}

// NewHandler создает handler листинга, defaultPageSize используется при отсутствии pageSize
func NewHandler(service BookingService, logger Logger, defaultPageSize int) *Handler {
	if defaultPageSize <= 0 {
		defaultPageSize = domain.DefaultPageSize
	}
	return &Handler{
		service:         service,
		logger:          logger,
		defaultPageSize: defaultPageSize,
	}
}

// Handle GET /api/v1/bookings?pageNo=&pageSize=&direction=&orderBy=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	pageNo, err := intParam(query, "pageNo", domain.DefaultPageNo)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid pageNo: %v", err)
		handlers.RespondError(w, r, err)
		return
	}

	pageSize, err := intParam(query, "pageSize", h.defaultPageSize)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid pageSize: %v", err)
		handlers.RespondError(w, r, err)
		return
	}

	req := &models.ListBookingsRequest{
		PageNo:    pageNo,
		PageSize:  pageSize,
		Direction: stringParam(query, "direction", string(domain.DefaultDirection)),
		OrderBy:   stringParam(query, "orderBy", string(domain.DefaultOrderBy)),
	}

	page, err := h.service.GetAll(r.Context(), req)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindInvalidArgument {
			h.logger.Warn("GET /bookings - Invalid list query: %v", err)
		} else {
			h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
		}
		handlers.RespondError(w, r, err)
		return
	}

	h.logger.Info("GET /bookings - Bookings listed: page=%d, size=%d, total=%d",
		req.PageNo, len(page.Content), page.TotalElements)
	handlers.RespondJSON(w, http.StatusOK, page)
}

func intParam(query url.Values, name string, def int) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.InvalidArgumentf(err, msgInvalidNumber, name, raw)
	}
	return value, nil
}

func stringParam(query url.Values, name, def string) string {
	if raw := query.Get(name); raw != "" {
		return raw
	}
	return def
}
