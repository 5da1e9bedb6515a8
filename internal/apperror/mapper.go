package apperror

import (
	"errors"
	"net/http"
	"strings"
)

// InvalidRequestArgument сообщение для InvalidArgument без деталей
const InvalidRequestArgument = "Invalid request argument"

// uriPrefix префикс в описании запроса, после которого идет путь
const uriPrefix = "uri="

// APIError тело ответа с ошибкой
type APIError struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// StatusCode возвращает HTTP статус для вида ошибки
func StatusCode(kind Kind) int {
	switch kind {
	case KindNotFound, KindRouteNotFound:
		return http.StatusNotFound
	case KindAlreadyExists:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindInvalidArgument, KindValidationFailed:
		return http.StatusBadRequest
	case KindUnsupportedMediaType:
		return http.StatusUnsupportedMediaType
	case KindUnsupportedMethod:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// Map преобразует любую ошибку в статус и тело ответа.
// path - описание запроса (с префиксом "uri=" или без него).
func Map(err error, path string) (int, APIError) {
	return StatusCode(KindOf(err)), APIError{
		Message: Message(err),
		Path:    ExtractPath(path),
	}
}

// Message возвращает текст для поля message.
// Для неизвестных ошибок используется их собственный текст, имя типа не попадает в ответ.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var appErr *Error
	if !errors.As(err, &appErr) {
		return err.Error()
	}

	switch appErr.Kind {
	case KindValidationFailed:
		if len(appErr.Violations) > 0 {
			return JoinViolations(appErr.Violations)
		}
		return appErr.Message
	case KindInvalidArgument:
		if appErr.Message == "" {
			return InvalidRequestArgument
		}
		return appErr.Message
	case KindUnhandled:
		return err.Error()
	default:
		if appErr.Message == "" && appErr.Err != nil {
			return appErr.Err.Error()
		}
		return appErr.Message
	}
}

// ExtractPath отрезает все до "uri=" включительно
func ExtractPath(description string) string {
	if idx := strings.Index(description, uriPrefix); idx != -1 {
		return description[idx+len(uriPrefix):]
	}
	return description
}
