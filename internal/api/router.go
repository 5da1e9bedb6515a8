// Package api собирает HTTP маршруты сервиса.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/BookMe-Service/internal/api/handlers"
	"github.com/m04kA/BookMe-Service/internal/api/middleware"
	"github.com/m04kA/BookMe-Service/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handlers обработчики эндпоинтов
type Handlers struct {
	CreateBooking http.HandlerFunc
	GetBooking    http.HandlerFunc
	ListBookings  http.HandlerFunc
}

// RouterConfig зависимости роутера
type RouterConfig struct {
	Handlers Handlers
	Logger   Logger

	// Metrics nil отключает HTTP метрики и эндпоинт метрик
	Metrics     *metrics.Metrics
	MetricsPath string
	// MetricsHandler по умолчанию promhttp.Handler()
	MetricsHandler http.Handler
}

// NewRouter создает роутер с маршрутами /api/v1 и обработкой ошибок маршрутизации
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = handlers.NotFound()
	r.MethodNotAllowedHandler = handlers.MethodNotAllowed()

	if cfg.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(cfg.Metrics))

		metricsHandler := cfg.MetricsHandler
		if metricsHandler == nil {
			metricsHandler = promhttp.Handler()
		}
		r.Handle(cfg.MetricsPath, metricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", cfg.Handlers.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings", cfg.Handlers.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", cfg.Handlers.GetBooking).Methods(http.MethodGet)

	// Описание запроса нужно и для ответов 404/405, поэтому оборачиваем весь роутер
	var handler http.Handler = middleware.RequestDescription(r)
	handler = middleware.Recovery(cfg.Logger, handlers.RespondError)(handler)

	return handler
}
