package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const requestInfoKey contextKey = "request_info"

// RequestInfo сведения о запросе, которые заполняются по ходу обработки
type RequestInfo struct {
	// Description описание запроса в виде "uri=/api/v1/bookings"
	Description string
	// ErrorKind вид ошибки, отданной клиенту, пусто при успехе
	ErrorKind string
}

// RequestDescription сохраняет описание запроса в контексте
func RequestDescription(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := &RequestInfo{Description: "uri=" + r.URL.Path}
		ctx := context.WithValue(r.Context(), requestInfoKey, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestInfoFrom извлекает RequestInfo из контекста
func RequestInfoFrom(ctx context.Context) (*RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey).(*RequestInfo)
	return info, ok
}
