package handlers

import (
	"net/http"

	"github.com/m04kA/BookMe-Service/internal/apperror"
)

// NotFound обработчик для URI без маршрута
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, r, apperror.RouteNotFound(r.Method, r.URL.Path))
	})
}

// MethodNotAllowed обработчик для известного URI с неподдерживаемым методом
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, r, apperror.UnsupportedMethod(r.Method))
	})
}
