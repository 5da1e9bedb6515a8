package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// ErrorResponder отображает ошибку в HTTP ответ
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

// Recovery перехватывает панику обработчика и отдает ее как необработанную ошибку
func Recovery(logger Logger, respond ErrorResponder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("%s %s - panic recovered: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
					respond(w, r, fmt.Errorf("%v", rec))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
